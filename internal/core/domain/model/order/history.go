package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through the NewHistoryEntry factory method.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry constructor",
	)
)

// HistoryEntry is one immutable record of the audit trail: the status an
// order reached, when, by whom, and an optional note. Entries are created
// exactly once per accepted transition and never mutated or deleted;
// ordering by creation time is the audit trail.
type HistoryEntry struct {
	status  Status
	actorID *kernel.UUID
	note    string
	at      time.Time

	isConstructed bool
}

// NewHistoryEntry creates a validated audit record for the given resulting
// status. actorID may be nil for system-originated entries; note may be empty.
func NewHistoryEntry(status Status, actorID *kernel.UUID, note string, at time.Time) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}
	if at.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("history entry timestamp")
	}

	return HistoryEntry{
		status:        status,
		actorID:       actorID,
		note:          note,
		at:            at,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was properly constructed through NewHistoryEntry.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// Status returns the resulting status this entry records.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ActorID returns the id of the user who caused the transition.
// Returns nil for system-originated entries.
func (h HistoryEntry) ActorID() *kernel.UUID {
	return h.actorID
}

// Note returns the optional free-form note attached to the transition.
func (h HistoryEntry) Note() string {
	return h.note
}

// At returns the entry's creation timestamp.
func (h HistoryEntry) At() time.Time {
	return h.at
}
