package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

var (
	mu         sync.Mutex
	envFile    string
	exported   bool
	exportErr  error
	exportedAt string
)

// SetEnvFile selects the .env file exported before the first New call.
// An empty path falls back to ./.env when it exists.
func SetEnvFile(path string) {
	mu.Lock()
	defer mu.Unlock()

	path = strings.TrimSpace(path)
	if path != envFile {
		envFile = path
		exported = false
		exportErr = nil
	}
}

func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New exports the env file (once) and processes T from the environment
// with the given prefix.
func New[T any](prefix string) (*T, error) {
	if err := ensureExported(); err != nil {
		return nil, err
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, fmt.Errorf("process %s config: %w", strings.ToUpper(prefix), err)
	}

	return &conf, nil
}

// EnvFile reports which file was exported, if any.
func EnvFile() string {
	mu.Lock()
	defer mu.Unlock()
	return exportedAt
}

func ensureExported() error {
	mu.Lock()
	defer mu.Unlock()

	if exported {
		return exportErr
	}
	exported = true

	if envFile != "" {
		if err := exportEnvironment(envFile); err != nil {
			exportErr = fmt.Errorf("failed to load env file: %w", err)
			return exportErr
		}
		exportedAt = envFile
		return nil
	}

	loaded, err := exportEnvironmentIfExists(defaultEnvFile)
	if err != nil {
		exportErr = fmt.Errorf("failed to load default env file: %w", err)
		return exportErr
	}
	if loaded {
		exportedAt = defaultEnvFile
	}
	return nil
}

func exportEnvironmentIfExists(filepath string) (bool, error) {
	info, err := os.Stat(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}
	return true, exportEnvironment(filepath)
}

// Values already present in the process environment win over the file.
func exportEnvironment(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range v.AllSettings() {
		key := strings.ToUpper(k)
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return err
		}
	}

	return nil
}
