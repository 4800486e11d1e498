// Package param models the Parameter Tree that drives rvg generation.
//
// A Param is one of:
//
//	Absent     — nothing supplied
//	Broadcast  — one Range applied to the whole subtree below it
//	FieldMap   — record field name → child Param
//
// The tree may be shallower than the type it parameterizes: Lookup hands
// a Broadcast, an Absent, or a FieldMap that lacks the requested key down
// to every field unchanged. This is what lets {"f0": (-17, 42)} drive a
// whole sub-record from one range.
//
// Ranges are validated when they are built (Magnitude, Bounds); invalid
// ones fail with ErrConfiguration and no partial value is returned.
//
// Trees can be written literally,
//
//	p := param.FieldMap{
//	  "f0": param.Between(-17, 42),
//	  "f1": param.Of(42),
//	}
//
// or decoded from YAML with Decode / Tree.
package param
