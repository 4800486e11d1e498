package ndarray

import (
	"strings"
)

// FieldValue is one named member of a Struct or one column of a
// StructArray.
type FieldValue struct {
	Name  string
	Value Value
}

// Struct is a single record instance: field values in declared order.
type Struct struct {
	fields []FieldValue
}

// NewStruct assembles a record instance. Field names must be unique.
func NewStruct(fields []FieldValue) (*Struct, error) {
	if err := checkNames("Struct", fields); err != nil {
		return nil, err
	}

	return &Struct{fields: append([]FieldValue(nil), fields...)}, nil
}

// Fields returns the field values in declared order.
func (s *Struct) Fields() []FieldValue { return append([]FieldValue(nil), s.fields...) }

// NumFields returns the number of fields.
func (s *Struct) NumFields() int { return len(s.fields) }

// Field looks a field value up by name.
func (s *Struct) Field(name string) (Value, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Shape returns nil: a Struct is a single unwrapped instance.
func (s *Struct) Shape() []int { return nil }

// String renders "(v0, v1, ...)".
func (s *Struct) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Value.String())
	}
	b.WriteByte(')')

	return b.String()
}

func (*Struct) value() {}

// StructArray is a shaped block of records stored column-wise: one value
// per field whose leading dimensions equal the block shape.
type StructArray struct {
	shape  []int
	fields []FieldValue
}

// NewStructArray assembles a record block from its columns. Every column
// must be a Dense or StructArray whose shape starts with shape.
func NewStructArray(shape []int, fields []FieldValue) (*StructArray, error) {
	if _, err := size(shape); err != nil {
		return nil, arrayErrorf("StructArray", "New", shape, err)
	}
	if err := checkNames("StructArray", fields); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if !hasPrefix(Shape(f.Value), shape) {
			return nil, arrayErrorf("StructArray", "New", shape, ErrShapeMismatch)
		}
	}

	return &StructArray{
		shape:  append([]int(nil), shape...),
		fields: append([]FieldValue(nil), fields...),
	}, nil
}

// Shape returns a copy of the block's dimensions.
func (a *StructArray) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the length of the leading dimension.
func (a *StructArray) Len() int { return a.shape[0] }

// Names returns the field names in declared order.
func (a *StructArray) Names() []string {
	names := make([]string, len(a.fields))
	for i, f := range a.fields {
		names[i] = f.Name
	}

	return names
}

// Field returns the whole column for name.
func (a *StructArray) Field(name string) (Value, bool) {
	for _, f := range a.fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Index selects position i along the leading dimension: a *Struct for a
// one-dimensional block, a *StructArray otherwise.
func (a *StructArray) Index(i int) (Value, error) {
	if i < 0 || i >= a.shape[0] {
		return nil, arrayErrorf("StructArray", "Index", []int{i}, ErrOutOfRange)
	}
	cols := make([]FieldValue, len(a.fields))
	for k, f := range a.fields {
		v, err := Index(f.Value, i)
		if err != nil {
			return nil, err
		}
		cols[k] = FieldValue{Name: f.Name, Value: v}
	}
	if len(a.shape) == 1 {
		return &Struct{fields: cols}, nil
	}

	return &StructArray{shape: append([]int(nil), a.shape[1:]...), fields: cols}, nil
}

// At materializes the record at idx; len(idx) must equal the number of
// dimensions.
func (a *StructArray) At(idx ...int) (*Struct, error) {
	if len(idx) != len(a.shape) {
		return nil, arrayErrorf("StructArray", "At", idx, ErrOutOfRange)
	}
	v, err := Index(a, idx...)
	if err != nil {
		return nil, err
	}

	return v.(*Struct), nil
}

// String renders nested brackets of records: [(1, 2) (3, 4)].
func (a *StructArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.shape[0]; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		v, err := a.Index(i)
		if err != nil {
			b.WriteString(err.Error())
			break
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')

	return b.String()
}

func (*StructArray) value() {}

func checkNames(typ string, fields []FieldValue) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup || f.Name == "" || f.Value == nil {
			return arrayErrorf(typ, "New", nil, ErrUnknownField)
		}
		seen[f.Name] = struct{}{}
	}

	return nil
}

func hasPrefix(shape, prefix []int) bool {
	if len(shape) < len(prefix) {
		return false
	}
	for i, d := range prefix {
		if shape[i] != d {
			return false
		}
	}

	return true
}
