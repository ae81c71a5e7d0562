package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "NFA"
	configDir  = ".nfa"
	configName = "config"
	configType = "toml"
	envFile    = ".env"
)

const (
	KeyNetwork               = "network"
	KeyContract              = "contract"
	KeyNetworksPath          = "networks.path"
	KeyWalletEndpoint        = "wallet.endpoint"
	KeyWalletConfirmTimeout  = "wallet.confirm_timeout"
	KeyWalletPollInterval    = "wallet.poll_interval"
	KeyOracleMode            = "oracle.mode"
	KeyOracleEndpoint        = "oracle.endpoint"
	KeyOracleAppID           = "oracle.app_id"
	KeyOracleToken           = "oracle.token"
	KeyOracleTimeout         = "oracle.timeout"
	KeyOracleVerifySignature = "oracle.verify_signature"
	KeyMoodTTL               = "mood.ttl"
	KeyMoodInterval          = "mood.interval"
	KeyEventsListen          = "events.listen"
	KeyLogLevel              = "log.level"
	KeyTxStrictEventID       = "tx.strict_event_id"
)

const (
	OracleModeLocal = "local"
	OracleModeAgent = "agent"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Network      string
	Contract     string
	NetworksPath string
	Wallet       WalletConfig
	Oracle       OracleConfig
	Mood         MoodConfig
	Events       EventsConfig
	LogLevel     string
	StrictTxID   bool

	v    *viper.Viper
	file string
}

type WalletConfig struct {
	Endpoint       string
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

type OracleConfig struct {
	Mode            string
	Endpoint        string
	AppID           string
	Token           string
	Timeout         time.Duration
	VerifySignature bool
}

type MoodConfig struct {
	TTL      time.Duration
	Interval time.Duration
}

type EventsConfig struct {
	Listen string
}

type LoadOptions struct {
	// HomeDir defaults to the user's home directory.
	HomeDir string
	// WorkDir is where a .env file is looked up. Defaults to the current directory.
	WorkDir string
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(KeyNetwork, "sapphire")
	v.SetDefault(KeyContract, "")
	v.SetDefault(KeyNetworksPath, filepath.Join(homeDir, configDir, "networks.toml"))
	v.SetDefault(KeyWalletEndpoint, "http://127.0.0.1:1248")
	v.SetDefault(KeyWalletConfirmTimeout, 2*time.Minute)
	v.SetDefault(KeyWalletPollInterval, 2*time.Second)
	v.SetDefault(KeyOracleMode, OracleModeLocal)
	v.SetDefault(KeyOracleEndpoint, "")
	v.SetDefault(KeyOracleAppID, "temanbulus-nfa")
	v.SetDefault(KeyOracleToken, "")
	v.SetDefault(KeyOracleTimeout, 10*time.Second)
	v.SetDefault(KeyOracleVerifySignature, false)
	v.SetDefault(KeyMoodTTL, 24*time.Hour)
	v.SetDefault(KeyMoodInterval, time.Hour)
	v.SetDefault(KeyEventsListen, "127.0.0.1:8787")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTxStrictEventID, false)
}

// Load resolves configuration from defaults, ~/.nfa/config.toml, a .env file
// and NFA_* environment variables, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	if err := loadDotEnv(opts.WorkDir); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, homeDir)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Network:      strings.ToLower(strings.TrimSpace(v.GetString(KeyNetwork))),
		Contract:     strings.TrimSpace(v.GetString(KeyContract)),
		NetworksPath: v.GetString(KeyNetworksPath),
		Wallet: WalletConfig{
			Endpoint:       v.GetString(KeyWalletEndpoint),
			ConfirmTimeout: v.GetDuration(KeyWalletConfirmTimeout),
			PollInterval:   v.GetDuration(KeyWalletPollInterval),
		},
		Oracle: OracleConfig{
			Mode:            strings.ToLower(strings.TrimSpace(v.GetString(KeyOracleMode))),
			Endpoint:        v.GetString(KeyOracleEndpoint),
			AppID:           v.GetString(KeyOracleAppID),
			Token:           v.GetString(KeyOracleToken),
			Timeout:         v.GetDuration(KeyOracleTimeout),
			VerifySignature: v.GetBool(KeyOracleVerifySignature),
		},
		Mood: MoodConfig{
			TTL:      v.GetDuration(KeyMoodTTL),
			Interval: v.GetDuration(KeyMoodInterval),
		},
		Events:     EventsConfig{Listen: v.GetString(KeyEventsListen)},
		LogLevel:   v.GetString(KeyLogLevel),
		StrictTxID: v.GetBool(KeyTxStrictEventID),
		v:          v,
		file:       filepath.Join(homeDir, configDir, configName+"."+configType),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv(workDir string) error {
	path := envFile
	if workDir != "" {
		path = filepath.Join(workDir, envFile)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, KeyNetwork)
	}
	if strings.TrimSpace(c.Wallet.Endpoint) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, KeyWalletEndpoint)
	}
	if c.Wallet.ConfirmTimeout <= 0 || c.Wallet.PollInterval <= 0 {
		return fmt.Errorf("%w: wallet timeouts must be positive", ErrInvalidConfig)
	}
	if c.Mood.TTL <= 0 || c.Mood.Interval <= 0 {
		return fmt.Errorf("%w: mood ttl and interval must be positive", ErrInvalidConfig)
	}

	switch c.Oracle.Mode {
	case OracleModeLocal:
	case OracleModeAgent:
		if strings.TrimSpace(c.Oracle.Endpoint) == "" {
			return fmt.Errorf("%w: %s is required when %s=%s", ErrInvalidConfig, KeyOracleEndpoint, KeyOracleMode, OracleModeAgent)
		}
	default:
		return fmt.Errorf("%w: unsupported %s %q", ErrInvalidConfig, KeyOracleMode, c.Oracle.Mode)
	}

	return nil
}

// Viper exposes the underlying store for adapters that read their own keys.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// File is where config init writes and where Load looks first.
func (c *Config) File() string {
	return c.file
}

// Settings returns every resolved key with secrets masked.
func (c *Config) Settings() map[string]any {
	settings := c.v.AllSettings()
	if oracle, ok := settings["oracle"].(map[string]any); ok {
		if token, _ := oracle["token"].(string); token != "" {
			oracle["token"] = "********"
		}
	}
	return settings
}

// WriteFile persists the resolved settings to File. An existing file is
// only replaced when overwrite is set.
func (c *Config) WriteFile(overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(c.file), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if overwrite {
		if err := c.v.WriteConfigAs(c.file); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
		return nil
	}

	if err := c.v.SafeWriteConfigAs(c.file); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("config file %s already exists", c.file)
		}
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
