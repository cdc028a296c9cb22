// Package cart holds the running shopping cart for the process.
package cart

import (
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
)

// Store is the mutable cart shared by every voice command. Implementations
// keep at most one line per product id and never hold a line at quantity 0.
type Store interface {
	// AddOrIncrement bumps the quantity of an existing line for the product
	// or appends a new line with quantity 1. Title and price are snapshotted
	// at insertion time.
	AddOrIncrement(p domain.Product)

	// RemoveOne decrements the first line, in insertion order, whose title
	// has nonzero token overlap with query; a line reaching quantity 0 is
	// deleted. Returns the affected line's title, or ok=false when no line
	// overlaps (including an empty cart — never an error).
	RemoveOne(query string) (title string, ok bool)

	// Summary returns the lines in insertion order and the total
	// (Σ price×quantity, rounded to 2 decimals).
	Summary() ([]domain.CartLine, float64)
}
