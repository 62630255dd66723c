package hal

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrLinkNotFound = errors.New("link not found")

// Document is the client-side view of a HAL response.
type Document struct {
	Links     Links
	Embedded  map[string][]*Document
	Templates map[string]Template
	Fields    map[string]json.RawMessage
}

func Parse(body []byte) (*Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode hal document: %w", err)
	}
	return fromFields(fields)
}

func fromFields(fields map[string]json.RawMessage) (*Document, error) {
	doc := &Document{
		Links:  Links{},
		Fields: map[string]json.RawMessage{},
	}

	for key, raw := range fields {
		switch key {
		case keyLinks:
			if err := json.Unmarshal(raw, &doc.Links); err != nil {
				return nil, err
			}
		case keyTemplates:
			if err := json.Unmarshal(raw, &doc.Templates); err != nil {
				return nil, fmt.Errorf("decode _templates: %w", err)
			}
		case keyEmbedded:
			embedded, err := parseEmbedded(raw)
			if err != nil {
				return nil, err
			}
			doc.Embedded = embedded
		default:
			doc.Fields[key] = raw
		}
	}
	return doc, nil
}

func parseEmbedded(raw json.RawMessage) (map[string][]*Document, error) {
	var byRel map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byRel); err != nil {
		return nil, fmt.Errorf("decode _embedded: %w", err)
	}

	embedded := make(map[string][]*Document, len(byRel))
	for rel, msg := range byRel {
		items, err := decodeOneOrMany[map[string]json.RawMessage](msg)
		if err != nil {
			return nil, fmt.Errorf("decode _embedded %q: %w", rel, err)
		}
		docs := make([]*Document, 0, len(items))
		for _, item := range items {
			doc, err := fromFields(item)
			if err != nil {
				return nil, fmt.Errorf("decode _embedded %q: %w", rel, err)
			}
			docs = append(docs, doc)
		}
		embedded[rel] = docs
	}
	return embedded, nil
}

// Field decodes a top-level state property into v.
func (d *Document) Field(name string, v any) error {
	raw, ok := d.Fields[name]
	if !ok {
		return fmt.Errorf("field %q not present", name)
	}
	return json.Unmarshal(raw, v)
}

func (d *Document) FindLinkWithRel(rel string) (Link, bool) {
	return d.Links.Get(rel)
}

func (d *Document) FindRequiredLinkWithRel(rel string) (Link, error) {
	link, ok := d.Links.Get(rel)
	if !ok {
		return Link{}, fmt.Errorf("%w: %s", ErrLinkNotFound, rel)
	}
	return link, nil
}

// FindLinkWithRel parses body and looks rel up in its _links.
func FindLinkWithRel(rel string, body []byte) (Link, bool, error) {
	doc, err := Parse(body)
	if err != nil {
		return Link{}, false, err
	}
	link, ok := doc.FindLinkWithRel(rel)
	return link, ok, nil
}

func FindRequiredLinkWithRel(rel string, body []byte) (Link, error) {
	doc, err := Parse(body)
	if err != nil {
		return Link{}, err
	}
	return doc.FindRequiredLinkWithRel(rel)
}
