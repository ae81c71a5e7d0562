package cmd

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxSpinnerViewFollowsTransactionPhase(t *testing.T) {
	t.Parallel()

	model := newTxSpinnerModel("Adopting Whiskers...", nil)
	assert.Contains(t, model.View(), "waiting for wallet approval")

	updated, _ := model.Update(txSubmittedMsg{
		hash:        "0x00000000000000000000000000000000000000000000000000000000000000f1",
		explorerURL: "https://explorer.oasis.io/testnet/sapphire/tx/0xf1",
	})
	view := updated.View()
	assert.Contains(t, view, "tx 0x000000…00f1 confirming")
	assert.Contains(t, view, "https://explorer.oasis.io/testnet/sapphire/tx/0xf1")
	assert.NotContains(t, view, "waiting for wallet approval")

	finished, cmd := updated.Update(txDoneMsg{})
	assert.NotNil(t, cmd)
	assert.Empty(t, finished.View())
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0xabc", shortHash("0xabc"))
	assert.Equal(t, "0x123456…cdef", shortHash("0x1234567890abcdef"))
}

func TestRunWithSpinnerReportsSubmissionAndResult(t *testing.T) {
	t.Parallel()

	var linked []string
	explorer := func(hash string) string {
		linked = append(linked, hash)
		return "https://example.test/tx/" + hash
	}
	errBoom := errors.New("boom")

	err := runWithSpinner(context.Background(), io.Discard, "Donating...", explorer, func(_ context.Context, submitted func(string)) error {
		submitted("0xf1")
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"0xf1"}, linked)
}
