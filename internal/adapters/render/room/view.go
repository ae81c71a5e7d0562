package room

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
	// MoodTTL marks a cached mood as stale once it is older than this.
	MoodTTL time.Duration
	// Decimals and Symbol format donation totals held in minor units.
	Decimals int
	Symbol   string
	Network  string
}

func renderView(pets []domain.OwnedEntity, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("pets: %d", len(pets))
	if opts.Network != "" {
		header += " | network: " + opts.Network
	}
	lines := []string{
		s.title.Render("Pet Room"),
		s.header.Render(header),
	}

	if len(pets) == 0 {
		lines = append(lines, s.empty.Render("No pets adopted yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, pet := range pets {
		lines = append(lines, s.section.Render(renderPet(pet, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPet(pet domain.OwnedEntity, opts RenderOptions, s styles) string {
	title := s.pet.Render(petTitle(pet))
	if !pet.Confirmed() {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			s.pending.Render("adoption pending confirmation"),
		)
	}

	parts := []string{
		title,
		moodLine(pet, opts, s),
		metaLine(s, "donated:", donationSummary(pet, opts)),
	}
	if pet.TokenReference != nil {
		parts = append(parts, metaLine(s, "token:", "#"+*pet.TokenReference))
	}
	if !pet.AcquiredAt.IsZero() {
		parts = append(parts, metaLine(s, "adopted:", formatAge(pet.AcquiredAt, opts.Now)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func petTitle(pet domain.OwnedEntity) string {
	glyph := strings.TrimSpace(pet.IconGlyph)
	if glyph == "" {
		glyph = domain.DefaultGlyph(pet.Category)
	}
	name := strings.TrimSpace(pet.DisplayName)
	if name == "" {
		name = string(pet.ID)
	}
	return fmt.Sprintf("%s %s (%s, %s)", glyph, name, pet.ID, categoryLabel(pet.Category))
}

func categoryLabel(category string) string {
	trimmed := strings.ToLower(strings.TrimSpace(category))
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}

func moodLine(pet domain.OwnedEntity, opts RenderOptions, s styles) string {
	label := s.metaKey.Render("mood:")
	if pet.CurrentAttribute == nil {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.empty.Render("unknown"))
	}

	moodStyle := s.detail
	switch *pet.CurrentAttribute {
	case domain.MoodContent:
		moodStyle = s.content
	case domain.MoodHungry:
		moodStyle = s.hungry
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, label, " ", moodStyle.Render(*pet.CurrentAttribute))

	if pet.LastAttributeRefreshAt == nil {
		return line + " " + s.warning.Render("[fallback]")
	}
	if !opts.Now.IsZero() && opts.MoodTTL > 0 {
		age := opts.Now.Sub(*pet.LastAttributeRefreshAt)
		if age >= opts.MoodTTL {
			return line + " " + s.warning.Render("[stale]")
		}
		freshness := lipgloss.NewStyle().Foreground(freshnessColor(age, opts.MoodTTL))
		line += " " + freshness.Render(fmt.Sprintf("(checked %s)", formatAge(*pet.LastAttributeRefreshAt, opts.Now)))
	}

	return line
}

func metaLine(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.metaKey.Render(key), " ", s.metaValue.Render(value))
}

func donationSummary(pet domain.OwnedEntity, opts RenderOptions) string {
	if pet.CumulativeDonationMinor == nil || pet.LastDonationAt == nil {
		return "never"
	}

	amount := formatMinor(*pet.CumulativeDonationMinor, opts.Decimals)
	if opts.Symbol != "" {
		amount += " " + opts.Symbol
	}
	return fmt.Sprintf("%s, last %s", amount, formatAge(*pet.LastDonationAt, opts.Now))
}

// formatMinor renders an integer amount of minor units with the given
// number of decimals, trimming trailing zeros.
func formatMinor(minor int64, decimals int) string {
	if decimals <= 0 {
		return fmt.Sprintf("%d", minor)
	}

	value := new(big.Rat).SetFrac(big.NewInt(minor), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	text := value.FloatString(decimals)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return text
}

func formatAge(at, now time.Time) string {
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	}
	if elapsed < 24*time.Hour {
		return plural(int(elapsed.Hours()), "hour") + " ago"
	}
	return plural(int(math.Floor(elapsed.Hours()/24)), "day") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// freshnessColor fades from bright white for a just-refreshed mood down to
// grey as it approaches the ttl.
func freshnessColor(age, ttl time.Duration) lipgloss.Color {
	if ttl <= 0 {
		return lipgloss.Color("255")
	}

	normalized := 1 - age.Seconds()/ttl.Seconds()
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	const (
		baseColor   = 240.0
		targetColor = 255.0
	)
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
