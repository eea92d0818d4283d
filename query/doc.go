// Package query selects elements of a document with expr-lang
// expressions.
//
// An expression is evaluated once per child of the element at a path,
// with the child bound as
//
//	name   the child's name, "" for array items
//	kind   "Node", "Array" or "Attribute"
//	index  the child's position
//	value  the child projected to plain Go values by [ToAny]
//
// and getpath(p) returning the projection of the element at path p of
// the whole document. Children for which the expression is true are
// selected.
package query
