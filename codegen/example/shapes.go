// Package example holds types serialized by code from hrd-codegen.
package example

//go:generate go run github.com/signadot/hrd-format/go-hrd/cmd/hrd-codegen

// Shape is a named polyline.
//
//hrd:type root
type Shape struct {
	Name   string
	Points []Point
	Weight float64 `hrd:"order=1"`
}

// Point is written as a two value array.
type Point struct {
	_ struct{} `hrd:"serializeAs=array"`
	X int32
	Y int32 `hrd:"order=1"`
}

// MakePoint returns the point at x, y.
//
//hrd:constructor
func MakePoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

