// Package jsonpath evaluates JSONPath expressions against JSON response bodies.
package jsonpath

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoMatch       = errors.New("jsonpath: no match")
	ErrAmbiguous     = errors.New("jsonpath: more than one match")
	ErrNotAScalar    = errors.New("jsonpath: match is not a scalar")
	ErrInvalidSyntax = errors.New("jsonpath: invalid expression")
)

type Document struct {
	root *yaml.Node
}

func Parse(body []byte) (*Document, error) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	var root yaml.Node
	if err := root.Encode(value); err != nil {
		return nil, fmt.Errorf("build node tree: %w", err)
	}
	return &Document{root: &root}, nil
}

// Read returns every node matched by expr. Keys containing a colon need bracket notation,
// for example $._links['restbucks:orders'].href.
func (d *Document) Read(expr string) ([]*yaml.Node, error) {
	path, err := yamlpath.NewPath(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSyntax, expr, err)
	}

	nodes, err := path.Find(d.root)
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	return nodes, nil
}

func (d *Document) readOne(expr string) (*yaml.Node, error) {
	nodes, err := d.Read(expr)
	if err != nil {
		return nil, err
	}

	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, expr)
	case 1:
		return nodes[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, expr)
	}
}

func (d *Document) ReadString(expr string) (string, error) {
	node, err := d.readOne(expr)
	if err != nil {
		return "", err
	}
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: %s", ErrNotAScalar, expr)
	}
	return node.Value, nil
}

// ReadInto decodes the single node matched by expr into v.
func (d *Document) ReadInto(expr string, v any) error {
	node, err := d.readOne(expr)
	if err != nil {
		return err
	}
	if err := node.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", expr, err)
	}
	return nil
}

// Count reports how many elements or members the matched node holds.
func (d *Document) Count(expr string) (int, error) {
	node, err := d.readOne(expr)
	if err != nil {
		return 0, err
	}

	switch node.Kind {
	case yaml.SequenceNode:
		return len(node.Content), nil
	case yaml.MappingNode:
		return len(node.Content) / 2, nil
	default:
		return 1, nil
	}
}

func (d *Document) Exists(expr string) bool {
	nodes, err := d.Read(expr)
	return err == nil && len(nodes) > 0
}

// ReadString is a one-shot helper around Parse.
func ReadString(body []byte, expr string) (string, error) {
	doc, err := Parse(body)
	if err != nil {
		return "", err
	}
	return doc.ReadString(expr)
}
