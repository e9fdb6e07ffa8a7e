package group

// Group represents a row in the development_groups table.
type Group struct {
	ID   int64
	Name string
}
