package expense

import "fmt"

// Store loads and saves the full collection of expenses.
type Store interface {
	// Load returns the stored collection, an empty one if nothing was stored yet.
	Load() (*Collection, error)
	// Save replaces the stored collection.
	Save(c *Collection) error
}

// CorruptPolicy decides what Load does with content that cannot be decoded.
type CorruptPolicy int

const (
	// ResetToEmpty logs the problem and loads an empty collection. The next
	// save overwrites the unreadable content.
	ResetToEmpty CorruptPolicy = iota
	// FailOnCorrupt makes Load return an error wrapping ErrCorruptStore.
	FailOnCorrupt
)

func (p CorruptPolicy) String() string {
	switch p {
	case ResetToEmpty:
		return "reset"
	case FailOnCorrupt:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseCorruptPolicy parses a string into a CorruptPolicy.
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch s {
	case "reset":
		return ResetToEmpty, nil
	case "fail":
		return FailOnCorrupt, nil
	default:
		return 0, fmt.Errorf("unknown corrupt store policy: %q", s)
	}
}
