package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pongtrack/startuppong/pkg/errors"
	"github.com/pongtrack/startuppong/pkg/pong"
)

// appName is the application name used for directories and display.
const appName = "pong"

// fileConfig is the shape of the optional TOML credentials file.
//
//	[account]
//	id = "your-account-id"
//	key = "your-access-key"
type fileConfig struct {
	Account struct {
		ID  string `toml:"id"`
		Key string `toml:"key"`
	} `toml:"account"`
}

// defaultConfigPath returns the XDG-style config file location
// (~/.config/pong/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadAccount resolves credentials in precedence order: explicit flags,
// then environment variables, then the TOML config file. configPath of ""
// means the default location; a missing default file is not an error unless
// nothing else supplied credentials.
func loadAccount(flagID, flagKey, configPath string) (pong.Account, error) {
	if flagID != "" && flagKey != "" {
		return pong.NewAccount(flagID, flagKey), nil
	}

	if account, err := pong.AccountFromEnv(); err == nil {
		return account, nil
	}

	explicit := configPath != ""
	if !explicit {
		path, err := defaultConfigPath()
		if err != nil {
			return pong.Account{}, err
		}
		configPath = path
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return pong.Account{}, errors.New(errors.ErrCodeMissingEnv,
				"no credentials: pass --account-id/--access-key, set %s and %s, or create %s",
				pong.EnvAccountID, pong.EnvAccessKey, configPath)
		}
		return pong.Account{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", configPath)
	}
	if cfg.Account.ID == "" || cfg.Account.Key == "" {
		return pong.Account{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s is missing account id or key", configPath)
	}
	return pong.NewAccount(cfg.Account.ID, cfg.Account.Key), nil
}
