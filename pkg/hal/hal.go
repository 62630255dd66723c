// Package hal models HAL and HAL-FORMS documents: link maps, embedded resources and
// affordance templates, plus the client-side discovery of links in a response body.
package hal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"sort"
	"strings"

	"github.com/yosida95/uritemplate/v3"
)

const (
	MediaTypeHAL      = "application/hal+json"
	MediaTypeHALForms = "application/prs.hal-forms+json"
)

// IANA relations used by the service.
const (
	RelSelf   = "self"
	RelCuries = "curies"
)

type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
	Name      string `json:"name,omitempty"`
	Title     string `json:"title,omitempty"`
	Type      string `json:"type,omitempty"`
}

func NewLink(href string) Link {
	return Link{Href: href}
}

func NewTemplatedLink(href string) Link {
	return Link{Href: href, Templated: true}
}

// Expand resolves the link's URI template. Variables absent from vars are dropped following
// RFC 6570 rules, so "/drinks/by-name{?q}" expands to "/drinks/by-name".
func (l Link) Expand(vars map[string]string) (string, error) {
	if !l.Templated {
		return l.Href, nil
	}
	return Expand(l.Href, vars)
}

func (l Link) String() string {
	return l.Href
}

// Expand treats href as a URI template whether or not it was flagged templated.
func Expand(href string, vars map[string]string) (string, error) {
	tmpl, err := uritemplate.New(href)
	if err != nil {
		return "", fmt.Errorf("parse uri template %q: %w", href, err)
	}

	values := uritemplate.Values{}
	for name, value := range vars {
		values.Set(name, uritemplate.String(value))
	}

	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expand uri template %q: %w", href, err)
	}
	return expanded, nil
}

// Links maps a relation to its links. A relation with a single link is rendered as an
// object, except curies which HAL requires to be an array. Both shapes are accepted when
// decoding.
type Links map[string][]Link

func (l Links) Add(rel string, links ...Link) {
	l[rel] = append(l[rel], links...)
}

func (l Links) Get(rel string) (Link, bool) {
	links, ok := l[rel]
	if !ok || len(links) == 0 {
		return Link{}, false
	}
	return links[0], true
}

func (l Links) Has(rel string) bool {
	_, ok := l.Get(rel)
	return ok
}

// Rels lists relations in lexical order, curies excluded.
func (l Links) Rels() []string {
	rels := make([]string, 0, len(l))
	for rel := range l {
		if rel == RelCuries {
			continue
		}
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return rels
}

func (l Links) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l))
	for rel, links := range l {
		if len(links) == 1 && rel != RelCuries {
			out[rel] = links[0]
			continue
		}
		out[rel] = links
	}
	return json.Marshal(out)
}

func (l *Links) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode _links: %w", err)
	}

	links := make(Links, len(raw))
	for rel, msg := range raw {
		decoded, err := decodeOneOrMany[Link](msg)
		if err != nil {
			return fmt.Errorf("decode link %q: %w", rel, err)
		}
		links[rel] = decoded
	}
	*l = links
	return nil
}

func decodeOneOrMany[T any](msg json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, err
		}
		return many, nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}

// CurieBuilder prefixes application relations with a compact URI namespace.
type CurieBuilder struct {
	namespace string
}

func NewCurieBuilder(namespace string) CurieBuilder {
	return CurieBuilder{namespace: namespace}
}

func (b CurieBuilder) Relation(name string) string {
	return b.namespace + ":" + name
}

// Curie returns the curies entry resolving this namespace against a documentation
// template such as "http://host/docs/{rel}".
func (b CurieBuilder) Curie(docsTemplate string) Link {
	return Link{Href: docsTemplate, Templated: true, Name: b.namespace}
}

// Negotiate picks the HAL flavour for an Accept header. HAL-FORMS is only served to
// clients asking for it.
func Negotiate(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == MediaTypeHALForms {
			return MediaTypeHALForms
		}
	}
	return MediaTypeHAL
}
