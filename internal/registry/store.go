package registry

import (
	"errors"

	"switchcfg/internal/models"
)

// MaxListResults bounds every bulk fetch. Anything above it is silently
// truncated; callers that need more have to page outside this service.
const MaxListResults = 1000

var ErrNotFound = errors.New("port config not found")

// Filter narrows Find/DeleteMany. Nil fields match everything.
type Filter struct {
	SwitchNumber *int
	PortType     *string
}

// Store is the persistence collaborator behind the registry: a document
// collection keyed by the (switch_number, port_name) natural key.
// Implementations own durability and concurrent-write arbitration;
// last-writer-wins on the natural key is acceptable.
type Store interface {
	// Replace inserts rec, discarding any prior record with the same
	// natural key. Full replacement: the old id and created_at are gone.
	Replace(rec models.PortConfig) error

	// Find returns at most limit matching records in storage order.
	Find(f Filter, limit int) ([]models.PortConfig, error)

	// FindOne returns the natural-key match, or (nil, nil) when absent.
	// Absence is a valid outcome, not an error.
	FindOne(portName string, switchNumber int) (*models.PortConfig, error)

	// UpdateOne applies values to the natural-key match and reports how
	// many records matched (0 or 1). It never creates a record.
	UpdateOne(portName string, switchNumber int, values map[string]any) (int64, error)

	// DeleteMany removes every record matching the switch filter
	// (all records when nil) and returns the deleted count.
	DeleteMany(switchNumber *int) (int64, error)
}
