// Package registry names record types so they can be referenced from
// schema files and the command line.
//
// A schema file is YAML:
//
//	types:
//	  simple:
//	    - {name: f0, type: float32}
//	    - {name: f1, type: int64}
//	  with_array:
//	    - {name: i, type: int8}
//	    - {name: a, type: simple, shape: [3]}
//
// A field type is either a built-in scalar name accepted by dtype.Parse or
// another type of the same file; shape turns the field into a fixed array.
// Types are resolved lazily on Lookup and memoized. A type reaching itself
// through its fields is rejected with ErrCycle.
package registry
