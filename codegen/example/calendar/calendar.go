// Package calendar is a document without a root element: its members
// are the calendar's own properties followed by its events.
package calendar

import "time"

//go:generate go run github.com/signadot/hrd-format/go-hrd/cmd/hrd-codegen

// Calendar requires an owner. Events are written to the Collection
// array.
//
//hrd:type root,anonymousRoot
type Calendar struct {
	Owner   *Person
	Created time.Time
	Events  []Event `hrd:"items"`
}

//hrd:type
type Person struct {
	Name  string
	Email *string
}

// Event is one entry of a calendar. Null Host, Tags and Until are left
// out when writing.
//
//hrd:type
type Event struct {
	Title string
	At    time.Time
	Until *time.Time
	Host  *Person
	Tags  []string
}
