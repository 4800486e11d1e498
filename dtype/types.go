// Descriptor variant and its three cases.

package dtype

import (
	"strconv"
	"strings"
)

// Kind is the numeric family of a Scalar.
type Kind uint8

const (
	// Signed is a two's complement integer.
	Signed Kind = iota + 1
	// Unsigned is a non-negative integer.
	Unsigned
	// Floating is an IEEE 754 binary floating point number.
	Floating
)

// String returns "int", "uint" or "float".
func (k Kind) String() string {
	switch k {
	case Signed:
		return "int"
	case Unsigned:
		return "uint"
	case Floating:
		return "float"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Class tags the three Descriptor cases.
type Class uint8

const (
	// ClassScalar tags a Scalar descriptor.
	ClassScalar Class = iota + 1
	// ClassFixedArray tags a FixedArray descriptor.
	ClassFixedArray
	// ClassRecord tags a Record descriptor.
	ClassRecord
)

// Descriptor is an immutable description of a value's shape.
// The set of implementations is closed: Scalar, FixedArray and Record.
type Descriptor interface {
	// Class reports which of the three cases this descriptor is.
	Class() Class
	// String renders the descriptor, e.g. "int8", "float32[3]", "{a: int8}".
	String() string

	sealed()
}

// Scalar is a numeric leaf: a Kind and a bit width.
type Scalar struct {
	kind Kind
	bits int
}

// Predeclared scalars for every supported kind/width pair.
var (
	Int8    = Scalar{kind: Signed, bits: 8}
	Int16   = Scalar{kind: Signed, bits: 16}
	Int32   = Scalar{kind: Signed, bits: 32}
	Int64   = Scalar{kind: Signed, bits: 64}
	Uint8   = Scalar{kind: Unsigned, bits: 8}
	Uint16  = Scalar{kind: Unsigned, bits: 16}
	Uint32  = Scalar{kind: Unsigned, bits: 32}
	Uint64  = Scalar{kind: Unsigned, bits: 64}
	Float32 = Scalar{kind: Floating, bits: 32}
	Float64 = Scalar{kind: Floating, bits: 64}
)

// NewScalar validates kind and width.
// Integers accept 8, 16, 32 and 64 bits; floats accept 32 and 64 bits.
func NewScalar(kind Kind, bits int) (Scalar, error) {
	switch kind {
	case Signed, Unsigned:
		switch bits {
		case 8, 16, 32, 64:
			return Scalar{kind: kind, bits: bits}, nil
		}
	case Floating:
		switch bits {
		case 32, 64:
			return Scalar{kind: kind, bits: bits}, nil
		}
	default:
		return Scalar{}, typeErrorf("NewScalar", "unknown kind %d", kind)
	}

	return Scalar{}, typeErrorf("NewScalar", "%s with %d bits", kind, bits)
}

// Kind returns the numeric family.
func (s Scalar) Kind() Kind { return s.kind }

// Bits returns the bit width.
func (s Scalar) Bits() int { return s.bits }

// Class implements Descriptor.
func (s Scalar) Class() Class { return ClassScalar }

// String returns the dtype name, e.g. "uint16".
func (s Scalar) String() string {
	return s.kind.String() + strconv.Itoa(s.bits)
}

// IsZero reports whether s is the zero Scalar (no kind, no width).
func (s Scalar) IsZero() bool { return s.kind == 0 && s.bits == 0 }

func (Scalar) sealed() {}

// FixedArray is an element descriptor repeated over fixed dimensions.
type FixedArray struct {
	elem Descriptor
	dims []int
}

// NewArray builds elem[dims...]. At least one dimension is required and
// every dimension must be positive.
func NewArray(elem Descriptor, dims ...int) (FixedArray, error) {
	if elem == nil {
		return FixedArray{}, typeErrorf("NewArray", "nil element type")
	}
	if len(dims) == 0 {
		return FixedArray{}, typeErrorf("NewArray", "no dimensions for %s", elem)
	}
	for i, d := range dims {
		if d <= 0 {
			return FixedArray{}, typeErrorf("NewArray", "dimension %d must be > 0, got %d", i, d)
		}
	}

	return FixedArray{elem: elem, dims: append([]int(nil), dims...)}, nil
}

// MustArray is NewArray for literal schemas; it panics on error.
func MustArray(elem Descriptor, dims ...int) FixedArray {
	a, err := NewArray(elem, dims...)
	if err != nil {
		panic(err)
	}

	return a
}

// Elem returns the element descriptor.
func (a FixedArray) Elem() Descriptor { return a.elem }

// Dims returns a copy of the intrinsic dimensions.
func (a FixedArray) Dims() []int { return append([]int(nil), a.dims...) }

// Len returns the product of the intrinsic dimensions.
func (a FixedArray) Len() int {
	n := 1
	for _, d := range a.dims {
		n *= d
	}

	return n
}

// Class implements Descriptor.
func (a FixedArray) Class() Class { return ClassFixedArray }

// String renders elem followed by its dimensions, e.g. "float32[2,3]".
func (a FixedArray) String() string {
	var b strings.Builder
	if a.elem != nil {
		b.WriteString(a.elem.String())
	}
	b.WriteByte('[')
	for i, d := range a.dims {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(']')

	return b.String()
}

func (FixedArray) sealed() {}

// Field is one named member of a Record.
type Field struct {
	Name string
	Type Descriptor
}

// F is shorthand for Field{Name: name, Type: t}.
func F(name string, t Descriptor) Field {
	return Field{Name: name, Type: t}
}

// Record is an ordered list of uniquely named fields.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord validates and stores fields in declared order.
// Names must be non-empty and unique; types must be non-nil.
func NewRecord(fields ...Field) (Record, error) {
	if len(fields) == 0 {
		return Record{}, typeErrorf("NewRecord", "record has no fields")
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return Record{}, typeErrorf("NewRecord", "field %d has an empty name", i)
		}
		if f.Type == nil {
			return Record{}, typeErrorf("NewRecord", "field %q has no type", f.Name)
		}
		if _, dup := index[f.Name]; dup {
			return Record{}, typeErrorf("NewRecord", "duplicate field %q", f.Name)
		}
		index[f.Name] = i
	}

	return Record{fields: append([]Field(nil), fields...), index: index}, nil
}

// MustRecord is NewRecord for literal schemas; it panics on error.
func MustRecord(fields ...Field) Record {
	r, err := NewRecord(fields...)
	if err != nil {
		panic(err)
	}

	return r
}

// Fields returns a copy of the fields in declared order.
func (r Record) Fields() []Field { return append([]Field(nil), r.fields...) }

// NumFields returns the number of fields.
func (r Record) NumFields() int { return len(r.fields) }

// Field looks a field up by name.
func (r Record) Field(name string) (Field, bool) {
	i, ok := r.index[name]
	if !ok {
		return Field{}, false
	}

	return r.fields[i], true
}

// Names returns the field names in declared order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}

	return names
}

// Class implements Descriptor.
func (r Record) Class() Class { return ClassRecord }

// String renders "{name: type, ...}".
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
	}
	b.WriteByte('}')

	return b.String()
}

func (Record) sealed() {}

// IsScalar reports whether d is a Scalar.
func IsScalar(d Descriptor) bool { return d != nil && d.Class() == ClassScalar }

// IsFixedArray reports whether d is a FixedArray.
func IsFixedArray(d Descriptor) bool { return d != nil && d.Class() == ClassFixedArray }

// IsRecord reports whether d is a Record.
func IsRecord(d Descriptor) bool { return d != nil && d.Class() == ClassRecord }

// Shape returns the intrinsic dimensions of d: the dims of a FixedArray,
// nil for a Scalar or Record.
func Shape(d Descriptor) []int {
	if a, ok := d.(FixedArray); ok {
		return a.Dims()
	}

	return nil
}
