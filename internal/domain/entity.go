package domain

import (
	"fmt"
	"math"
	"time"
)

type EntityPhase string

const (
	PhasePending   EntityPhase = "pending"
	PhaseConfirmed EntityPhase = "confirmed"
)

// OwnedEntity is a soulbound adopted pet. It is never removed once confirmed.
type OwnedEntity struct {
	ID                      EntityID
	DisplayName             string
	Category                string
	IconGlyph               string
	AcquiredAt              time.Time
	Phase                   EntityPhase
	PendingReference        string
	TokenReference          *string
	LastAttributeRefreshAt  *time.Time
	LastDonationAt          *time.Time
	CumulativeDonationMinor *int64
	CurrentAttribute        *string
}

func (e OwnedEntity) Confirmed() bool {
	return e.Phase == PhaseConfirmed
}

func (e OwnedEntity) PersonalityKey() PersonalityKey {
	key := PersonalityKey{
		ID:          e.ID,
		DisplayName: e.DisplayName,
		Category:    e.Category,
	}
	if e.LastDonationAt != nil {
		at := *e.LastDonationAt
		key.LastDonationAt = &at
	}
	if e.CumulativeDonationMinor != nil {
		key.CumulativeDonationMinor = *e.CumulativeDonationMinor
	}
	return key
}

// DonationTotalAfter returns the cumulative donation once amountMinor is
// added. It fails instead of wrapping past the int64 range.
func (e OwnedEntity) DonationTotalAfter(amountMinor int64) (int64, error) {
	var total int64
	if e.CumulativeDonationMinor != nil {
		total = *e.CumulativeDonationMinor
	}
	if amountMinor < 0 || total > math.MaxInt64-amountMinor {
		return 0, fmt.Errorf("%w: %d + %d", ErrDonationOverflow, total, amountMinor)
	}
	return total + amountMinor, nil
}

// Clone returns a deep copy so callers can never mutate ledger-owned pointers.
func (e OwnedEntity) Clone() OwnedEntity {
	e.TokenReference = cloneString(e.TokenReference)
	e.CurrentAttribute = cloneString(e.CurrentAttribute)
	e.LastAttributeRefreshAt = cloneTime(e.LastAttributeRefreshAt)
	e.LastDonationAt = cloneTime(e.LastDonationAt)
	if e.CumulativeDonationMinor != nil {
		v := *e.CumulativeDonationMinor
		e.CumulativeDonationMinor = &v
	}
	return e
}

type PersonalityKey struct {
	ID                      EntityID
	DisplayName             string
	Category                string
	LastDonationAt          *time.Time
	CumulativeDonationMinor int64
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	t := *v
	return &t
}
