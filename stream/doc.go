// Package stream provides sequential access to HRD documents.
//
// [Reader] is a cursor over a document tree. It keeps a stack of frames,
// one per level descended, each holding the current element, its parent
// and its position among the parent's children. Deserializers walk a
// document with ReadBeginElement, ReadNextSibling and ReadEndElement and
// read scalars with the typed Read methods.
//
// [Writer] is the mirror image: serializers open and close elements and
// arrays and write scalars, and the writer builds the document tree.
//
// Virtual nodes are transparent to the Reader: introspection, descent and
// typed reads act on the single child the node stands for.
package stream
