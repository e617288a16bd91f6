package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultAppPort     = "8080"
	defaultAppEnv      = "local"
	defaultFixtureDir  = "database/fixtures"
	defaultDataDir     = "storage/data"
	defaultCartKey     = "vastra:cart"
	defaultSessionKey  = "vastra:session:user"
	defaultRateLimit   = "120"
	defaultStoreDriver = "file"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once and merges them over the
// built-in defaults. Every accessor calls it, so callers may but need not.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":     defaultAppPort,
		"APP_ENV":      defaultAppEnv,
		"FIXTURE_DIR":  defaultFixtureDir,
		"DATA_DIR":     defaultDataDir,
		"CART_KEY":     defaultCartKey,
		"SESSION_KEY":  defaultSessionKey,
		"RATE_LIMIT":   defaultRateLimit,
		"STORE_DRIVER": defaultStoreDriver,
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// FixtureDir is where the read-only product/user fixture documents live.
func FixtureDir() string {
	_ = Load()
	return get("FIXTURE_DIR", defaultFixtureDir)
}

// DataDir is the root directory of the durable key-value store.
func DataDir() string {
	_ = Load()
	return get("DATA_DIR", defaultDataDir)
}

// CartKey is the storage key the persisted cart lives under.
func CartKey() string {
	_ = Load()
	return get("CART_KEY", defaultCartKey)
}

// SessionKey is the storage key the current-user record lives under.
func SessionKey() string {
	_ = Load()
	return get("SESSION_KEY", defaultSessionKey)
}

// CartStoreDriver selects the kv driver backing the cart: "file" (durable,
// the default) or "memory" (throwaway, for demos and tests).
func CartStoreDriver() string {
	_ = Load()

	driver := strings.ToLower(get("STORE_DRIVER", defaultStoreDriver))
	switch driver {
	case "file", "memory":
		return driver
	default:
		return defaultStoreDriver
	}
}

// RateLimit is the per-IP requests-per-minute budget for the HTTP surface.
func RateLimit() int {
	_ = Load()

	n, err := strconv.Atoi(get("RATE_LIMIT", defaultRateLimit))
	if err != nil || n <= 0 {
		n, _ = strconv.Atoi(defaultRateLimit)
	}
	return n
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
