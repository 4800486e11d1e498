// Dense is a homogeneous block of Numbers stored row-major in a flat slice,
// the N-dimensional sibling of a row-major matrix.

package ndarray

import (
	"math"
	"strings"

	"github.com/katalvlaran/rvg/dtype"
)

// Dense is a row-major block of Numbers of one scalar type.
// shape holds at least one dimension; data holds product(shape) elements.
type Dense struct {
	typ   dtype.Scalar
	shape []int
	data  []Number
}

// NewDense creates a zero-filled block of the given shape.
// Stage 1 (Validate): at least one dimension, none negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(product(shape)) time and memory.
func NewDense(typ dtype.Scalar, shape []int) (*Dense, error) {
	n, err := size(shape)
	if err != nil {
		return nil, arrayErrorf("Dense", "New", shape, err)
	}
	data := make([]Number, n)
	zero := Number{typ: typ}
	for i := range data {
		data[i] = zero
	}

	return &Dense{typ: typ, shape: append([]int(nil), shape...), data: data}, nil
}

// FromValues wraps values (row-major) in a block of the given shape.
// len(values) must equal product(shape); the slice is not copied.
func FromValues(typ dtype.Scalar, shape []int, values []Number) (*Dense, error) {
	n, err := size(shape)
	if err != nil {
		return nil, arrayErrorf("Dense", "FromValues", shape, err)
	}
	if n != len(values) {
		return nil, arrayErrorf("Dense", "FromValues", shape, ErrShapeMismatch)
	}

	return &Dense{typ: typ, shape: append([]int(nil), shape...), data: values}, nil
}

// size validates shape and returns the product of its dimensions.
func size(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d < 0 || (d != 0 && n > math.MaxInt/d) {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// Type returns the scalar type of every element.
func (m *Dense) Type() dtype.Scalar { return m.typ }

// Shape returns a copy of the block's dimensions.
func (m *Dense) Shape() []int { return append([]int(nil), m.shape...) }

// Len returns the length of the leading dimension.
func (m *Dense) Len() int { return m.shape[0] }

// Size returns the total number of elements.
func (m *Dense) Size() int { return len(m.data) }

// offset computes the flat index of idx or returns ErrOutOfRange.
// Complexity: O(len(shape)).
func (m *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(m.shape) {
		return 0, arrayErrorf("Dense", "At", idx, ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= m.shape[k] {
			return 0, arrayErrorf("Dense", "At", idx, ErrOutOfRange)
		}
		off = off*m.shape[k] + i
	}

	return off, nil
}

// At retrieves the element at idx; len(idx) must equal the number of
// dimensions.
// Complexity: O(len(shape)).
func (m *Dense) At(idx ...int) (Number, error) {
	off, err := m.offset(idx)
	if err != nil {
		return Number{}, err
	}

	return m.data[off], nil
}

// Set assigns v at idx.
// Complexity: O(len(shape)).
func (m *Dense) Set(v Number, idx ...int) error {
	off, err := m.offset(idx)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Index selects position i along the leading dimension. A one-dimensional
// block yields a Number; otherwise the result is a sub-block sharing
// storage with m.
// Complexity: O(1).
func (m *Dense) Index(i int) (Value, error) {
	if i < 0 || i >= m.shape[0] {
		return nil, arrayErrorf("Dense", "Index", []int{i}, ErrOutOfRange)
	}
	if len(m.shape) == 1 {
		return m.data[i], nil
	}
	stride := len(m.data) / m.shape[0]

	return &Dense{
		typ:   m.typ,
		shape: append([]int(nil), m.shape[1:]...),
		data:  m.data[i*stride : (i+1)*stride],
	}, nil
}

// Values returns a row-major copy of every element.
// Complexity: O(Size()).
func (m *Dense) Values() []Number {
	return append([]Number(nil), m.data...)
}

// Float64s returns every element converted to float64, row-major.
// Complexity: O(Size()).
func (m *Dense) Float64s() []float64 {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v.Float64()
	}

	return out
}

// String renders nested brackets, one level per dimension: [[1 2] [3 4]].
// Complexity: O(Size()).
func (m *Dense) String() string {
	var b strings.Builder
	m.write(&b, 0, 0)

	return b.String()
}

// write renders dimension dim starting at flat offset off.
func (m *Dense) write(b *strings.Builder, dim, off int) {
	stride := 1
	for _, d := range m.shape[dim+1:] {
		stride *= d
	}
	b.WriteByte('[')
	for i := 0; i < m.shape[dim]; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if dim == len(m.shape)-1 {
			b.WriteString(m.data[off+i].String())
			continue
		}
		m.write(b, dim+1, off+i*stride)
	}
	b.WriteByte(']')
}

func (*Dense) value() {}
