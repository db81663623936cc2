package models

// Category classifies expenses. The set is seeded by migrations and read-only
// at runtime.
type Category struct {
	ID    int64
	Name  string
	Icon  string
	Color string

	// IsDefault marks the categories every installation ships with.
	IsDefault bool
}
