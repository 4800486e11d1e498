package dtype

import (
	"sort"
	"strings"
)

// names maps every accepted dtype spelling to its Scalar. The aliases follow
// numpy's C-type names on a 64-bit platform.
var names = map[string]Scalar{
	"int8":    Int8,
	"int16":   Int16,
	"int32":   Int32,
	"int64":   Int64,
	"uint8":   Uint8,
	"uint16":  Uint16,
	"uint32":  Uint32,
	"uint64":  Uint64,
	"float32": Float32,
	"float64": Float64,

	"byte":      Int8,
	"ubyte":     Uint8,
	"short":     Int16,
	"ushort":    Uint16,
	"intc":      Int32,
	"uintc":     Uint32,
	"int":       Int64,
	"uint":      Uint64,
	"long":      Int64,
	"ulong":     Uint64,
	"longlong":  Int64,
	"ulonglong": Uint64,
	"single":    Float32,
	"double":    Float64,
	"float":     Float64,
}

// Parse resolves a dtype name such as "int8", "uint64", "float32" or one of
// the C-style aliases ("short", "double", "longlong", ...). Matching is
// case-insensitive; a leading "np." is ignored.
func Parse(name string) (Scalar, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "np.")
	if s, ok := names[key]; ok {
		return s, nil
	}

	return Scalar{}, typeErrorf("Parse", "unknown dtype %q", name)
}

// Names returns every name Parse accepts, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
