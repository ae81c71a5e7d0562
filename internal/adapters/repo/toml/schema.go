package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Networks []networkSchema `toml:"networks"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported networks schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type networkSchema struct {
	Name        string         `toml:"name"`
	ChainID     uint64         `toml:"chain_id"`
	DisplayName string         `toml:"display_name"`
	Contract    string         `toml:"contract,omitempty"`
	Currency    currencySchema `toml:"currency"`
	RPC         []string       `toml:"rpc"`
	Explorers   []string       `toml:"explorers,omitempty"`
}

type currencySchema struct {
	Name     string `toml:"name"`
	Symbol   string `toml:"symbol"`
	Decimals int    `toml:"decimals"`
}
