package param

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tree wraps a Param so it can be embedded in YAML documents:
//
//	f0: 17          # Broadcast(Magnitude(17))
//	f1: [-17, 42]   # Broadcast(Bounds(-17, 42))
//	f2:             # Absent
//	f3: {x: 1}      # FieldMap
type Tree struct {
	Param Param
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tree) UnmarshalYAML(n *yaml.Node) error {
	p, err := fromNode(n)
	if err != nil {
		return err
	}
	t.Param = p

	return nil
}

// Decode parses a YAML document into a Param. An empty document is Absent.
func Decode(data []byte) (Param, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrDecode)
	}

	return fromNode(&doc)
}

// fromNode maps one YAML node onto the Param variant.
func fromNode(n *yaml.Node) (Param, error) {
	switch n.Kind {
	case 0:
		return Absent{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Absent{}, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return Absent{}, nil
		}
		m, err := number(n)
		if err != nil {
			return nil, err
		}
		r, err := Magnitude(m)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Broadcast{Range: r}, nil
	case yaml.SequenceNode:
		if len(n.Content) != 2 {
			return nil, fmt.Errorf("line %d: range needs exactly 2 numbers, got %d: %w", n.Line, len(n.Content), ErrDecode)
		}
		lo, err := number(n.Content[0])
		if err != nil {
			return nil, err
		}
		hi, err := number(n.Content[1])
		if err != nil {
			return nil, err
		}
		r, err := Bounds(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Broadcast{Range: r}, nil
	case yaml.MappingNode:
		m := make(FieldMap, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("line %d: duplicate field %q: %w", n.Content[i].Line, key, ErrDecode)
			}
			child, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = child
		}
		return m, nil
	}

	return nil, fmt.Errorf("line %d: unexpected node kind %d: %w", n.Line, n.Kind, ErrDecode)
}

func number(n *yaml.Node) (float64, error) {
	var f float64
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("line %d: expected a number: %w", n.Line, ErrDecode)
	}
	if err := n.Decode(&f); err != nil {
		return 0, fmt.Errorf("line %d: %q is not a number: %w", n.Line, n.Value, ErrDecode)
	}

	return f, nil
}
