package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

func newTestRepository(t *testing.T, networksPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(NetworksPathKey, networksPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func localDevnet() domain.NetworkProfile {
	return domain.NetworkProfile{
		Name: "devnet",
		Chain: domain.ChainDescriptor{
			ChainID:           31337,
			DisplayName:       "Local Devnet",
			NativeCurrency:    domain.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
			RPCEndpoints:      []string{"http://127.0.0.1:8545"},
			ExplorerEndpoints: []string{"http://127.0.0.1:4000"},
		},
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
	}
}

func TestRepositorySaveAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "networks.toml"))
	profile := localDevnet()

	require.NoError(t, repo.Save(context.Background(), profile))

	got, err := repo.Get(context.Background(), "devnet")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestRepositorySaveReplacesExistingEntry(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "networks.toml"))
	profile := localDevnet()
	require.NoError(t, repo.Save(context.Background(), profile))

	profile.ContractAddress = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	require.NoError(t, repo.Save(context.Background(), profile))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)

	count := 0
	for _, p := range profiles {
		if p.Name == "devnet" {
			count++
			assert.Equal(t, profile.ContractAddress, p.ContractAddress)
		}
	}
	assert.Equal(t, 1, count)
}

func TestRepositoryFileEntryOverridesPreset(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	require.NoError(t, os.WriteFile(networksPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[networks]]",
		"name = \"ethereum\"",
		"chain_id = 11155111",
		"display_name = \"Sepolia\"",
		"contract = \"0x00000000000000000000000000000000000000aa\"",
		"rpc = [\"https://rpc.sepolia.org\"]",
		"",
		"[networks.currency]",
		"name = \"Sepolia Ether\"",
		"symbol = \"SEP\"",
		"decimals = 18",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, networksPath)

	got, err := repo.Get(context.Background(), "ethereum")
	require.NoError(t, err)
	assert.Equal(t, domain.ChainID(11155111), got.Chain.ChainID)
	assert.Equal(t, "SEP", got.Chain.NativeCurrency.Symbol)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", got.ContractAddress)

	sapphire, err := repo.Get(context.Background(), "sapphire")
	require.NoError(t, err)
	assert.Equal(t, domain.SapphireTestnet.ChainID, sapphire.Chain.ChainID)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), localDevnet()))

	networksPath := filepath.Join(homeDir, ".nfa", "networks.toml")
	assert.Equal(t, networksPath, repo.Path())
	info, err := os.Stat(networksPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "networks.toml"))
	assert.False(t, repo.Exists())

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNetworkProfiles(), profiles)

	_, err = repo.Get(context.Background(), "devnet")
	require.ErrorIs(t, err, domain.ErrUnknownNetwork)
}

func TestRepositorySaveRejectsInvalidProfile(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	repo := newTestRepository(t, networksPath)

	profile := localDevnet()
	profile.Chain.RPCEndpoints = nil

	err := repo.Save(context.Background(), profile)
	require.Error(t, err)
	assert.ErrorContains(t, err, "rpc endpoint")
	assert.NoFileExists(t, networksPath)
}

func TestRepositoryWriteDefaults(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	repo := newTestRepository(t, networksPath)

	require.NoError(t, repo.WriteDefaults(context.Background(), false))
	assert.True(t, repo.Exists())

	data, err := os.ReadFile(networksPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sapphire")
	assert.Contains(t, string(data), "23295")

	err = repo.WriteDefaults(context.Background(), false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, repo.WriteDefaults(context.Background(), true))
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	require.NoError(t, os.WriteFile(networksPath, []byte("networks = ["), 0o600))

	repo := newTestRepository(t, networksPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode networks file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "networks.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, localDevnet())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllNetworks(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	repoA := newTestRepository(t, networksPath)
	repoB := newTestRepository(t, networksPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			profile := localDevnet()
			profile.Name = prefix + strconv.Itoa(i)
			errCh <- repo.Save(context.Background(), profile)
		}
	}

	go save(repoA, "net-a-")
	go save(repoB, "net-b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	profiles, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, perRepoWrites*2+len(domain.DefaultNetworkProfiles()))
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	repo := newTestRepository(t, networksPath)

	require.NoError(t, repo.Save(context.Background(), localDevnet()))

	data, err := os.ReadFile(networksPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	networksPath := filepath.Join(t.TempDir(), "networks.toml")
	require.NoError(t, os.WriteFile(networksPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"networks = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, networksPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported networks schema version")
}
