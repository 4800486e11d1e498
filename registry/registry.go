package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rvg/dtype"
)

const (
	methodLoad   = "Load"
	methodDefine = "Define"
	methodLookup = "Lookup"
)

// FieldDef is one field of a named type as written in a schema file.
type FieldDef struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Shape []int  `yaml:"shape,omitempty"`
}

// document is the top level of a schema file.
type document struct {
	Types map[string][]FieldDef `yaml:"types"`
}

// Registry maps type names to descriptors. Built-in scalar names are
// always resolvable and cannot be redefined. Safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	defs     map[string][]FieldDef
	resolved map[string]dtype.Descriptor
}

// New returns an empty registry; only built-in scalar names resolve.
func New() *Registry {
	return &Registry{
		defs:     make(map[string][]FieldDef),
		resolved: make(map[string]dtype.Descriptor),
	}
}

// Load parses a schema document. Unknown keys are rejected. References
// between types are checked lazily, on Lookup.
func Load(data []byte) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", methodLoad, err, ErrSchema)
	}

	r := New()
	names := make([]string, 0, len(doc.Types))
	for name := range doc.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Define(name, doc.Types[name]...); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// LoadFile reads and parses the schema file at path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	r, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}

	return r, nil
}

// Define adds the record type name with the given fields. The name must be
// new and must not be a built-in scalar name; field names must be unique
// and shapes positive.
func (r *Registry) Define(name string, fields ...FieldDef) error {
	if name == "" {
		return schemaErrorf(methodDefine, "empty type name")
	}
	if _, err := dtype.Parse(name); err == nil {
		return schemaErrorf(methodDefine, "type %q shadows a built-in type", name)
	}
	if len(fields) == 0 {
		return schemaErrorf(methodDefine, "type %q has no fields", name)
	}

	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Name == "" || f.Type == "" {
			return schemaErrorf(methodDefine, "type %q field %d: name and type are required", name, i)
		}
		if _, dup := seen[f.Name]; dup {
			return schemaErrorf(methodDefine, "type %q: duplicate field %q", name, f.Name)
		}
		seen[f.Name] = struct{}{}
		for _, d := range f.Shape {
			if d <= 0 {
				return schemaErrorf(methodDefine, "type %q field %q: shape %v must be positive", name, f.Name, f.Shape)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.defs[name]; dup {
		return schemaErrorf(methodDefine, "type %q defined twice", name)
	}
	cp := make([]FieldDef, len(fields))
	for i, f := range fields {
		cp[i] = FieldDef{Name: f.Name, Type: f.Type, Shape: append([]int(nil), f.Shape...)}
	}
	r.defs[name] = cp

	return nil
}

// Lookup resolves name to a descriptor: a built-in scalar (any name
// dtype.Parse accepts) or a defined record type. Unknown names fail with
// dtype.ErrUnsupportedType, self-referencing types with ErrCycle.
func (r *Registry) Lookup(name string) (dtype.Descriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolve(name, nil)
}

func (r *Registry) resolve(name string, stack []string) (dtype.Descriptor, error) {
	if s, err := dtype.Parse(name); err == nil {
		return s, nil
	}
	if d, ok := r.resolved[name]; ok {
		return d, nil
	}
	defs, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%s: type %q: %w", methodLookup, name, dtype.ErrUnsupportedType)
	}
	for i, s := range stack {
		if s == name {
			path := strings.Join(stack[i:], " -> ") + " -> " + name
			return nil, fmt.Errorf("%s: %s: %w", methodLookup, path, ErrCycle)
		}
	}

	stack = append(stack, name)
	fields := make([]dtype.Field, len(defs))
	for i, f := range defs {
		t, err := r.resolve(f.Type, stack)
		if err != nil {
			return nil, err
		}
		if len(f.Shape) > 0 {
			if t, err = dtype.NewArray(t, f.Shape...); err != nil {
				return nil, err
			}
		}
		fields[i] = dtype.F(f.Name, t)
	}

	rec, err := dtype.NewRecord(fields...)
	if err != nil {
		return nil, err
	}
	r.resolved[name] = rec

	return rec, nil
}

// Names returns the defined type names, sorted. Built-in names are listed
// by dtype.Names.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
