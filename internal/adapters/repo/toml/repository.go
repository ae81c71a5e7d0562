package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
)

const (
	NetworksPathKey    = "networks.path"
	networksFileMode   = 0o600
	networksDirMode    = 0o700
	networksConfigDir  = ".nfa"
	networksConfigFile = "networks.toml"
	tempFilePattern    = ".networks-*.toml.tmp"
)

// Repository stores network profiles in a versioned TOML file. Profiles not
// present in the file fall back to the built-in presets.
type Repository struct {
	networksPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.NetworkRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	networksPath := cfg.GetString(NetworksPathKey)
	if networksPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		networksPath = filepath.Join(homeDir, networksConfigDir, networksConfigFile)
	}

	networksPath, err := normalizeNetworksPath(networksPath)
	if err != nil {
		return nil, err
	}

	return &Repository{networksPath: networksPath, mu: lockForPath(networksPath)}, nil
}

func (r *Repository) Path() string {
	return r.networksPath
}

func (r *Repository) Exists() bool {
	_, err := os.Stat(r.networksPath)
	return err == nil
}

func (r *Repository) List(ctx context.Context) ([]domain.NetworkProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	return mergeWithPresets(file), nil
}

func (r *Repository) Get(ctx context.Context, name string) (domain.NetworkProfile, error) {
	profiles, err := r.List(ctx)
	if err != nil {
		return domain.NetworkProfile{}, err
	}

	for _, profile := range profiles {
		if profile.Name == name {
			return profile, nil
		}
	}

	return domain.NetworkProfile{}, fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, name)
}

func (r *Repository) Save(ctx context.Context, profile domain.NetworkProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(profile)
	updated := false
	for i := range file.Networks {
		if file.Networks[i].Name == encoded.Name {
			file.Networks[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Networks = append(file.Networks, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// WriteDefaults writes the built-in presets. An existing file is only
// replaced when overwrite is set.
func (r *Repository) WriteDefaults(ctx context.Context, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !overwrite {
		if _, err := os.Stat(r.networksPath); err == nil {
			return fmt.Errorf("networks file %s already exists", r.networksPath)
		}
	}

	file := fileSchema{}
	for _, profile := range domain.DefaultNetworkProfiles() {
		file.Networks = append(file.Networks, toSchema(profile))
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.networksPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read networks file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode networks file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.networksPath), networksDirMode); err != nil {
		return fmt.Errorf("create networks directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode networks file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.networksPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp networks file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp networks file: %w", err)
	}
	if err := tempFile.Chmod(networksFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp networks file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp networks file: %w", err)
	}

	if err := os.Rename(tempName, r.networksPath); err != nil {
		return fmt.Errorf("replace networks file: %w", err)
	}
	cleanup = false

	return nil
}

func mergeWithPresets(file fileSchema) []domain.NetworkProfile {
	profiles := make([]domain.NetworkProfile, 0, len(file.Networks)+2)
	seen := map[string]bool{}
	for _, entry := range file.Networks {
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		profiles = append(profiles, fromSchema(entry))
	}
	for _, preset := range domain.DefaultNetworkProfiles() {
		if !seen[preset.Name] {
			profiles = append(profiles, preset)
		}
	}
	return profiles
}

func toSchema(profile domain.NetworkProfile) networkSchema {
	chain := profile.Chain
	return networkSchema{
		Name:        profile.Name,
		ChainID:     uint64(chain.ChainID),
		DisplayName: chain.DisplayName,
		Contract:    profile.ContractAddress,
		Currency: currencySchema{
			Name:     chain.NativeCurrency.Name,
			Symbol:   chain.NativeCurrency.Symbol,
			Decimals: chain.NativeCurrency.Decimals,
		},
		RPC:       append([]string(nil), chain.RPCEndpoints...),
		Explorers: append([]string(nil), chain.ExplorerEndpoints...),
	}
}

func fromSchema(entry networkSchema) domain.NetworkProfile {
	return domain.NetworkProfile{
		Name: entry.Name,
		Chain: domain.ChainDescriptor{
			ChainID:     domain.ChainID(entry.ChainID),
			DisplayName: entry.DisplayName,
			NativeCurrency: domain.NativeCurrency{
				Name:     entry.Currency.Name,
				Symbol:   entry.Currency.Symbol,
				Decimals: entry.Currency.Decimals,
			},
			RPCEndpoints:      append([]string(nil), entry.RPC...),
			ExplorerEndpoints: append([]string(nil), entry.Explorers...),
		},
		ContractAddress: entry.Contract,
	}
}

func normalizeNetworksPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve networks path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
