// Package codec converts HRD attribute values to and from Go scalars.
//
// Integers are written in decimal, or in hexadecimal with a 0x prefix, and
// both forms are accepted when reading. Floats use the shortest form that
// round trips. Booleans are the one byte integers 0 and 1. Characters and
// strings are quoted; every other type is bare. Times use one of two
// fixed layouts, [LayoutZone] and [LayoutNoZone].
//
// The Read functions take an attribute element and fail with an
// *ir.StructuralError when the element is not a non-null attribute of the
// expected quoting, and with a *FormatError when its value does not
// parse.
package codec
