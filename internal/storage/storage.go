// Package storage provides the key-value slot the cart persists into. A Slot
// holds one serialized value per key; backends are interchangeable so tests
// can inject an in-memory double.
package storage

import (
	"context"
	"errors"
)

// Status classifies the outcome of a read so callers can log the difference
// between an empty slot and a broken backend while still degrading the same
// way (empty value, no error surfaced to the user).
type Status int

const (
	StatusOK Status = iota
	StatusAbsent
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAbsent:
		return "absent"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

var ErrUnavailable = errors.New("storage backend unavailable")

// Slot is a named string slot. Get reports StatusAbsent with an empty value
// for a missing key and StatusUnavailable when the backend cannot be reached.
type Slot interface {
	Get(ctx context.Context, key string) (string, Status, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
