package tree

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotObject is returned when a document does not hold a mapping at its top level.
	ErrNotObject = errors.New("document is not an object")
	// ErrAliasLoop is returned when an alias refers to a node that contains it.
	ErrAliasLoop = errors.New("alias refers to itself")
	// ErrAliasExpansion is returned when aliases expand a document past its node budget.
	ErrAliasExpansion = errors.New("document expands too many aliases")
)

// Alias expansion may produce at most aliasBudgetRatio nodes per parsed node,
// plus aliasBudgetBase.
const (
	aliasBudgetRatio = 10
	aliasBudgetBase  = 10000
)

// Decode parses a YAML or JSON document into an Object, keeping key order.
// An empty document decodes to an empty Object.
func Decode(data []byte) (*Object, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Kind == 0 {
		return New(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return New(), nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.AliasNode && root.Alias != nil {
		root = root.Alias
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	d := &decoder{
		expanding: make(map[*yaml.Node]bool),
		budget:    aliasBudgetRatio*countNodes(&doc) + aliasBudgetBase,
	}
	v, err := d.fromNode(root)
	if err != nil {
		return nil, err
	}
	return v.(*Object), nil
}

// decoder converts yaml nodes, guarding alias expansion.
type decoder struct {
	expanding map[*yaml.Node]bool
	budget    int
}

func countNodes(n *yaml.Node) int {
	count := 1
	for _, child := range n.Content {
		count += countNodes(child)
	}
	return count
}

func (d *decoder) fromNode(n *yaml.Node) (any, error) {
	d.budget--
	if d.budget < 0 {
		return nil, ErrAliasExpansion
	}
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", n.Line, n.Value)
		}
		if d.expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: %w: *%s", n.Line, ErrAliasLoop, n.Value)
		}
		d.expanding[n.Alias] = true
		defer delete(d.expanding, n.Alias)
		return d.fromNode(n.Alias)
	case yaml.MappingNode:
		obj := New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if isMergeKey(keyNode) {
				// "<<: *anchor" copies the anchored entries without overriding explicit keys.
				if err := d.mergeKey(obj, valueNode); err != nil {
					return nil, err
				}
				continue
			}
			value, err := d.fromNode(valueNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			value, err := d.fromNode(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil
	case yaml.ScalarNode:
		var value any
		if err := n.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func (d *decoder) mergeKey(dst *Object, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := d.fromNode(src)
		if err != nil {
			return err
		}
		obj, ok := v.(*Object)
		if !ok {
			return fmt.Errorf("line %d: merge key requires a mapping", src.Line)
		}
		obj.Range(func(key string, value any) bool {
			if !dst.Has(key) {
				dst.Set(key, value)
			}
			return true
		})
	}
	return nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && (n.Tag == "" || n.Tag == "!!merge")
}
