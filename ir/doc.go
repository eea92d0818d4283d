// Package ir provides the in-memory document model for HRD (Hierarchical
// Record Data) documents.
//
// # Overview
//
// An HRD document is a tree of Elements. Every document, whether parsed
// from text, built by hand or produced by generated serializers, is an
// *ir.Element rooted at an unnamed Node.
//
// The IR carries no position information. It is readily representable in
// JSON (see MarshalJSON), which makes it useful in contexts lacking an HRD
// parser.
//
// # Element Kinds
//
// The Kind field selects which fields of an Element are in use:
//
//   - NodeKind: an ordered collection of named children, or a single
//     unnamed child (a virtual node)
//   - ArrayKind: an ordered collection of unnamed children
//   - AttributeKind: a leaf holding a string Value, or nil for null
//
// An attribute's Quoted flag chooses between the quoted string encoding
// and the bare token encoding when the document is written.
//
// # Structural Rules
//
// Children are added with AddElement, which rejects:
//
//   - children of attributes
//   - named children of arrays
//   - duplicate names among siblings
//   - an unnamed child of a node that already has children
//   - any child of a virtual node
//   - an element that contains its parent
//
// Violations are reported as *StructuralError, which wraps ErrStructure.
//
// # Virtual Nodes
//
// A Node with exactly one unnamed child stands for that child. The text
// writer emits the child under the node's name, so on reading back the
// virtual wrapper disappears. Equal and Normalize compare and rewrite
// documents modulo this collapse, and Resolve follows the chain.
//
// # Paths
//
// GetPath looks up descendants with paths such as "$.Nodes[2].Text".
// Field segments select a child by name, index segments by position.
package ir
