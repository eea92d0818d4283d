// Package encode writes ir documents as HRD text.
//
// # Usage
//
//	doc := ir.NewDocument()
//	_ = doc.AddElement(ir.NewAttribute("A", "1", false))
//	err := encode.Encode(doc, os.Stdout)
//
//	// Encode with options
//	err = encode.Encode(doc, os.Stdout, encode.Indent(2), encode.IndentChar(' '))
//
//	// Encode to the JSON form of the tree
//	err = encode.Encode(doc, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Virtual nodes are written as their single child under the node's name,
// so reading the output back yields [ir.Normalize] of the input.
//
// # Related Packages
//
//   - github.com/signadot/hrd-format/go-hrd/ir - document tree
//   - github.com/signadot/hrd-format/go-hrd/parse - Parse text to a tree
package encode
