package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRenderEmptyRoom(t *testing.T) {
	output, err := Render(nil, RenderOptions{Network: "sapphire"})

	require.NoError(t, err)
	assert.Contains(t, output, "Pet Room")
	assert.Contains(t, output, "pets: 0 | network: sapphire")
	assert.Contains(t, output, "No pets adopted yet.")
}

func TestRenderConfirmedPetWithDonations(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.OwnedEntity{
		{
			ID:                      "cat-1",
			DisplayName:             "Whiskers",
			Category:                "Cat",
			IconGlyph:               "🐱",
			AcquiredAt:              now.Add(-3 * 24 * time.Hour),
			Phase:                   domain.PhaseConfirmed,
			TokenReference:          ptr("7"),
			LastDonationAt:          ptr(now.Add(-30 * time.Minute)),
			CumulativeDonationMinor: ptr(int64(1500000000000000000)),
			CurrentAttribute:        ptr(domain.MoodContent),
			LastAttributeRefreshAt:  ptr(now.Add(-2 * time.Hour)),
		},
	}, RenderOptions{Now: now, MoodTTL: domain.MoodTTL, Decimals: 18, Symbol: "ROSE"})

	require.NoError(t, err)
	assert.Contains(t, output, "pets: 1")
	assert.Contains(t, output, "🐱 Whiskers (cat-1, cat)")
	assert.Contains(t, output, domain.MoodContent)
	assert.Contains(t, output, "(checked 2 hours ago)")
	assert.Contains(t, output, "donated: 1.5 ROSE, last 30 minutes ago")
	assert.Contains(t, output, "token: #7")
	assert.Contains(t, output, "adopted: 3 days ago")
	assert.NotContains(t, output, "[stale]")
}

func TestRenderPendingPet(t *testing.T) {
	output, err := Render([]domain.OwnedEntity{
		{ID: "dog-1", DisplayName: "Rex", Category: "dog", Phase: domain.PhasePending},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "🐶 Rex (dog-1, dog)")
	assert.Contains(t, output, "adoption pending confirmation")
	assert.NotContains(t, output, "mood:")
}

func TestRenderMarksStaleAndFallbackMoods(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.OwnedEntity{
		{
			ID:                     "cat-1",
			DisplayName:            "Whiskers",
			Category:               "cat",
			Phase:                  domain.PhaseConfirmed,
			CurrentAttribute:       ptr(domain.MoodHungry),
			LastAttributeRefreshAt: ptr(now.Add(-25 * time.Hour)),
		},
		{
			ID:               "bird-1",
			DisplayName:      "Tweety",
			Category:         "parrot",
			Phase:            domain.PhaseConfirmed,
			CurrentAttribute: ptr(domain.MoodHungry),
		},
	}, RenderOptions{Now: now, MoodTTL: domain.MoodTTL})

	require.NoError(t, err)
	assert.Contains(t, output, "pets: 2")
	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "[fallback]")
	assert.Contains(t, output, "🐦 Tweety (bird-1, parrot)")
	assert.Contains(t, output, "donated: never")
}

func TestRenderUnknownMoodAndNoClock(t *testing.T) {
	output, err := Render([]domain.OwnedEntity{
		{
			ID:                     "rabbit-1",
			Category:               "rabbit",
			Phase:                  domain.PhaseConfirmed,
			LastAttributeRefreshAt: ptr(time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC)),
		},
	}, RenderOptions{MoodTTL: time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "🐰 rabbit-1 (rabbit-1, rabbit)")
	assert.Contains(t, output, "mood: unknown")
	assert.NotContains(t, output, "[stale]")
}

func TestFormatMinor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minor    int64
		decimals int
		want     string
	}{
		{minor: 1000, decimals: 0, want: "1000"},
		{minor: 1000, decimals: 3, want: "1"},
		{minor: 1500, decimals: 3, want: "1.5"},
		{minor: 1, decimals: 18, want: "0.000000000000000001"},
		{minor: 0, decimals: 18, want: "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMinor(tt.minor, tt.decimals))
	}
}
