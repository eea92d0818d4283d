// Package contract describes how Go types map onto HRD documents and
// resolves those descriptions into serialization plans.
//
// A [Type] is a statically declared descriptor: its properties, its
// constructors and its [Options]. [Resolve] checks a type against the
// rules below and produces a [Plan] that a code generator can follow
// without further decisions.
//
// # Constructors
//
// A constructor with parameters is a candidate when every parameter is
// bound to a property. Exactly one candidate is chosen; with none, the
// zero value constructor is used. Two candidates are ambiguous.
//
// # Properties
//
// A property participates unless it is ignored, either by its own Ignore
// flag or by the type's IgnoreProperties default, which is true for
// collections. It must also be settable or bound to the chosen
// constructor. Constructor bound properties come first in parameter
// order, then the rest by Order and then by name.
//
// # Representation
//
// Types written as arrays place their properties positionally and write
// nulls as empty values. Other types write each property as a named
// member and omit nulls. A type at the root of a document is wrapped in
// an element or array named after the type, unless it is an anonymous
// root, in which case its properties are written directly into the
// document and nulls are an error.
package contract
