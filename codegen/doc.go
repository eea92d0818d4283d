// Package codegen generates HRD serializers for Go types.
//
// Contracts are read from Go source: a struct opts in with a blank
// marker field,
//
//	type Point struct {
//		_ struct{} `hrd:"serializeAs=array,root"`
//		X int32
//		Y int32 `hrd:"order=1"`
//	}
//
// or a type with a //hrd:type directive in its doc comment. Functions
// marked //hrd:constructor build values of the type they return.
//
// [Generate] resolves the contracts with the contract package and emits
// Serialize<T> and Deserialize<T> functions over stream.Writer and
// stream.Reader, without reflection.
//
// # Related Packages
//
//   - github.com/signadot/hrd-format/go-hrd/contract - Contract resolution
//   - github.com/signadot/hrd-format/go-hrd/stream - Cursor and writer
package codegen
