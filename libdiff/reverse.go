package libdiff

// Reverse returns the changes turning the "to" document of a diff back
// into its "from" document.
func Reverse(changes []Change) []Change {
	if changes == nil {
		return nil
	}
	res := make([]Change, len(changes))
	for i, c := range changes {
		res[i] = MakeChange(c.Path, c.To, c.From)
	}
	return res
}
