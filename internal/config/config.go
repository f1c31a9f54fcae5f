package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnema/near-pool-cli/internal/domain"
)

const (
	EnvPrefix = "NP"

	KeyNetwork      = "network"
	KeyPoolID       = "pool_id"
	KeyRPCURL       = "rpc_url"
	KeyWalletURL    = "wallet_url"
	KeyMinStake     = "min_stake"
	KeyGas          = "gas"
	KeyLoginListen  = "login.listen"
	KeyLoginTimeout = "login.timeout"
	KeySessionPath  = "session.path"
	KeySecretsDir   = "secrets.dir"
	KeySecretsStore = "secrets.backend"
	KeyPassPrefix   = "secrets.pass_prefix"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyServeAddr    = "serve.addr"
)

// flagKeys maps global flag names onto config keys.
var flagKeys = map[string]string{
	"network":   KeyNetwork,
	"pool":      KeyPoolID,
	"rpc-url":   KeyRPCURL,
	"log-level": KeyLogLevel,
}

const (
	SecretsAuto = "auto"
	SecretsPass = "pass"
	SecretsFile = "file"
)

type Config struct {
	Pool           domain.Pool
	RPCURL         string
	WalletURL      string
	Login          LoginConfig
	SecretsBackend string
	SecretsDir     string
	PassPrefix     string
	Log            LogConfig
	ServeAddr      string

	// Viper carries the resolved settings for adapters that read their own keys.
	Viper *viper.Viper
}

type LoginConfig struct {
	Listen  string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	ConfigFile string
	// EnvFiles are loaded with godotenv; missing files are skipped.
	EnvFiles []string
	Flags    *pflag.FlagSet
}

// DefaultConfigDir is ~/.near-pool.
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".near-pool"), nil
}

func Load(opts LoadOptions) (*Config, error) {
	envFiles := opts.EnvFiles
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	setDefaults(v, homeDir)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.AddConfigPath(filepath.Join(homeDir, ".near-pool"))
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(KeyNetwork, string(domain.NetworkMainnet))
	v.SetDefault(KeyPoolID, string(domain.DefaultPoolID))
	v.SetDefault(KeyMinStake, domain.DefaultMinStake)
	v.SetDefault(KeyGas, domain.DefaultGas)
	v.SetDefault(KeyLoginListen, "127.0.0.1:0")
	v.SetDefault(KeyLoginTimeout, 5*time.Minute)
	v.SetDefault(KeySecretsDir, filepath.Join(homeDir, ".near-credentials"))
	v.SetDefault(KeySecretsStore, SecretsAuto)
	v.SetDefault(KeyPassPrefix, "near-pool")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyServeAddr, "127.0.0.1:8547")
}

func fromViper(v *viper.Viper) (*Config, error) {
	network := domain.Network(strings.ToLower(strings.TrimSpace(v.GetString(KeyNetwork))))
	if err := network.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", KeyNetwork, err)
	}

	pool := domain.Pool{
		ID:       domain.NormalizeAccountID(v.GetString(KeyPoolID)),
		Network:  network,
		MinStake: strings.TrimSpace(v.GetString(KeyMinStake)),
		Gas:      v.GetUint64(KeyGas),
	}.WithDefaults()
	if err := pool.Validate(); err != nil {
		return nil, fmt.Errorf("config pool: %w", err)
	}

	cfg := &Config{
		Pool:      pool,
		RPCURL:    strings.TrimSpace(v.GetString(KeyRPCURL)),
		WalletURL: strings.TrimSpace(v.GetString(KeyWalletURL)),
		Login: LoginConfig{
			Listen:  v.GetString(KeyLoginListen),
			Timeout: v.GetDuration(KeyLoginTimeout),
		},
		SecretsBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsStore))),
		SecretsDir:     v.GetString(KeySecretsDir),
		PassPrefix:     v.GetString(KeyPassPrefix),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		ServeAddr: v.GetString(KeyServeAddr),
		Viper:     v,
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = network.DefaultRPCURL()
	}
	if cfg.WalletURL == "" {
		cfg.WalletURL = network.DefaultWalletURL()
	}
	switch cfg.SecretsBackend {
	case SecretsAuto, SecretsPass, SecretsFile:
	default:
		return nil, fmt.Errorf("config %s: unknown backend %q", KeySecretsStore, cfg.SecretsBackend)
	}
	if cfg.Login.Timeout <= 0 {
		return nil, fmt.Errorf("config %s must be positive", KeyLoginTimeout)
	}

	return cfg, nil
}
