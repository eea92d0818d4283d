// Package token provides tokenization of HRD text.
//
// [Tokenize] splits a document into names, bare values, quoted strings
// and the punctuation `{ } [ ] , =`. Whitespace and `;` separate tokens,
// `//` and `/* */` comments are skipped and a leading UTF-8 byte order
// mark is ignored.
//
// A bare token starting with a digit, a sign or a dot is a value
// ([TValue]); any other bare token is a name ([TName]). Whether a name is
// used as a member name or as a bare value is decided by the parser.
//
// [Quote] and [Unquote] convert between strings and the quoted form.
// [ValidName] and [ValidBare] report whether a string can be written
// unquoted and read back unchanged.
package token
