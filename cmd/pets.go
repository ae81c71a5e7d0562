package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/temanbulus/nfa-cli/internal/adapters/render/room"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

type petView struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Emoji              string     `json:"emoji"`
	Phase              string     `json:"phase"`
	TokenID            *string    `json:"tokenId,omitempty"`
	AdoptedAt          time.Time  `json:"adoptedAt"`
	Mood               *string    `json:"mood,omitempty"`
	MoodRefreshedAt    *time.Time `json:"moodRefreshedAt,omitempty"`
	LastDonationAt     *time.Time `json:"lastDonationAt,omitempty"`
	TotalDonationMinor *int64     `json:"totalDonationMinor,omitempty"`
}

func newPetView(pet domain.OwnedEntity) petView {
	return petView{
		ID:                 string(pet.ID),
		Name:               pet.DisplayName,
		Type:               pet.Category,
		Emoji:              pet.IconGlyph,
		Phase:              string(pet.Phase),
		TokenID:            pet.TokenReference,
		AdoptedAt:          pet.AcquiredAt,
		Mood:               pet.CurrentAttribute,
		MoodRefreshedAt:    pet.LastAttributeRefreshAt,
		LastDonationAt:     pet.LastDonationAt,
		TotalDonationMinor: pet.CumulativeDonationMinor,
	}
}

func newPetsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "pets",
		Aliases: []string{"room"},
		Short:   "Show adopted pets and their moods",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.buildRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.connect(cmd.Context()); err != nil {
				return fmt.Errorf("connect wallet: %w", err)
			}
			if err := rt.moods.RefreshAll(cmd.Context()); err != nil {
				return fmt.Errorf("refresh moods: %w", err)
			}

			pets := rt.ledger.Snapshot()
			if asJSON {
				views := make([]petView, 0, len(pets))
				for _, pet := range pets {
					views = append(views, newPetView(pet.Clone()))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			rendered, err := app.roomRenderer(pets, room.RenderOptions{
				Now:      app.now(),
				MoodTTL:  app.cfg.Mood.TTL,
				Decimals: rt.profile.Chain.NativeCurrency.Decimals,
				Symbol:   rt.profile.Chain.NativeCurrency.Symbol,
				Network:  rt.profile.Chain.DisplayName,
			})
			if err != nil {
				return fmt.Errorf("render pets: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
