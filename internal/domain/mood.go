package domain

import "time"

const (
	MoodContent = "Feeling purrfect! 🐾"
	MoodHungry  = "I'm hungry 😿"
)

const (
	MoodTTL = 24 * time.Hour
	// A donation keeps the pet content only while zero whole hours have elapsed.
	contentWindow = time.Hour
)

// MoodFor is the binary mood policy. It never returns anything but
// MoodContent or MoodHungry.
func MoodFor(key PersonalityKey, now time.Time) string {
	if key.LastDonationAt == nil {
		return MoodHungry
	}

	elapsed := now.Sub(*key.LastDonationAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < contentWindow {
		return MoodContent
	}

	return MoodHungry
}

// RefreshDue reports whether a cached attribute must be fetched again.
// An absent refresh time counts as infinitely old.
func RefreshDue(e OwnedEntity, now time.Time, ttl time.Duration) bool {
	if e.CurrentAttribute == nil || e.LastAttributeRefreshAt == nil {
		return true
	}
	return now.Sub(*e.LastAttributeRefreshAt) >= ttl
}
