package hal

import (
	"encoding/json"
	"fmt"
)

const (
	keyLinks     = "_links"
	keyEmbedded  = "_embedded"
	keyTemplates = "_templates"
)

// Representation is the server-side builder for a HAL document. State must marshal to a
// JSON object; its fields are flattened next to the reserved HAL keys.
type Representation struct {
	State     any
	Links     Links
	Embedded  map[string][]*Representation
	Templates map[string]Template
}

func New(state any) *Representation {
	return &Representation{
		State: state,
		Links: Links{},
	}
}

func (r *Representation) AddLink(rel string, link Link) *Representation {
	r.Links.Add(rel, link)
	return r
}

// Embed always renders rel as an array, including the empty one, so collection documents
// keep a stable shape.
func (r *Representation) Embed(rel string, items ...*Representation) *Representation {
	if r.Embedded == nil {
		r.Embedded = map[string][]*Representation{}
	}
	if r.Embedded[rel] == nil {
		r.Embedded[rel] = make([]*Representation, 0, len(items))
	}
	r.Embedded[rel] = append(r.Embedded[rel], items...)
	return r
}

func (r *Representation) AddTemplate(name string, tmpl Template) *Representation {
	if r.Templates == nil {
		r.Templates = map[string]Template{}
	}
	r.Templates[name] = tmpl
	return r
}

// WithoutTemplates returns a shallow copy for plain HAL responses.
func (r *Representation) WithoutTemplates() *Representation {
	clone := *r
	clone.Templates = nil
	if r.Embedded != nil {
		clone.Embedded = make(map[string][]*Representation, len(r.Embedded))
		for rel, items := range r.Embedded {
			stripped := make([]*Representation, len(items))
			for i, item := range items {
				stripped[i] = item.WithoutTemplates()
			}
			clone.Embedded[rel] = stripped
		}
	}
	return &clone
}

func (r *Representation) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}

	if r.State != nil {
		state, err := json.Marshal(r.State)
		if err != nil {
			return nil, fmt.Errorf("marshal state: %w", err)
		}
		if err := json.Unmarshal(state, &fields); err != nil {
			return nil, fmt.Errorf("state must be a JSON object: %w", err)
		}
	}

	if err := putJSON(fields, keyLinks, r.Links, len(r.Links) > 0); err != nil {
		return nil, err
	}
	if err := putJSON(fields, keyEmbedded, r.Embedded, r.Embedded != nil); err != nil {
		return nil, err
	}
	if err := putJSON(fields, keyTemplates, r.Templates, len(r.Templates) > 0); err != nil {
		return nil, err
	}

	return json.Marshal(fields)
}

func putJSON(fields map[string]json.RawMessage, key string, value any, present bool) error {
	if !present {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	fields[key] = raw
	return nil
}
