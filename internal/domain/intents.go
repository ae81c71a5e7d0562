package domain

import "strings"

type EntityID string

type AdoptionIntent struct {
	EntityID    EntityID
	DisplayName string
	Category    string
	IconGlyph   string
	// PriceMinor is kept for forward compatibility. Submissions always carry zero value.
	PriceMinor int64
}

func (i AdoptionIntent) Glyph() string {
	if strings.TrimSpace(i.IconGlyph) != "" {
		return i.IconGlyph
	}
	return DefaultGlyph(i.Category)
}

type DonationIntent struct {
	EntityID     EntityID
	AmountMinor  int64
	HideAmount   bool
	HideIdentity bool
}

type TransactionResult struct {
	ConfirmedID      string
	ReceiptReference string
}

func DefaultGlyph(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "cat":
		return "🐱"
	case "dog":
		return "🐶"
	case "rabbit":
		return "🐰"
	default:
		return "🐦"
	}
}
