package ndarray

// Value is a generated value: a Number, a Struct, or a shaped Dense or
// StructArray block. The set of implementations is closed.
type Value interface {
	// Shape returns the dimensions of a block, or nil for a single
	// unwrapped Number or Struct.
	Shape() []int
	String() string

	value()
}

// Shape returns v.Shape(), or nil for a nil value.
func Shape(v Value) []int {
	if v == nil {
		return nil
	}

	return v.Shape()
}

// Index applies positional indices one leading dimension at a time.
// With no indices it returns v unchanged.
func Index(v Value, idx ...int) (Value, error) {
	cur := v
	for k, i := range idx {
		var err error
		switch b := cur.(type) {
		case *Dense:
			cur, err = b.Index(i)
		case *StructArray:
			cur, err = b.Index(i)
		default:
			return nil, arrayErrorf("Value", "Index", idx[:k+1], ErrNotIndexable)
		}
		if err != nil {
			return nil, err
		}
	}

	return cur, nil
}

// Format renders v the way the command-line front end prints it.
func Format(v Value) string {
	if v == nil {
		return "<nil>"
	}

	return v.String()
}
