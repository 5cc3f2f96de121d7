// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Data   DataConfig
	Site   SiteConfig
	Server ServerConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds the locations of the static data files the catalog is built from.
type DataConfig struct {
	// BasePath is the data directory holding the JSON files.
	BasePath string
	// GearFile is the category-nested gear catalog (default: {data}/gear-merged.json).
	GearFile string
	// ManufacturersFile is the flat brand array (default: {data}/manufacturers.json).
	ManufacturersFile string
	// SaunasFile is the flat sauna directory array (default: {data}/saunas.json).
	SaunasFile string
	// GuidesPath is the directory of MDX guide articles (default: {data}/guides).
	GuidesPath string
	// Watch enables reloading the catalog when data files change (default: true in development).
	Watch bool
}

// SiteConfig holds the public-site conventions the catalog resolves against.
type SiteConfig struct {
	// BaseURL is the canonical site origin used in sitemap entries.
	BaseURL string
	// PublicPath is the static asset root that `/`-prefixed image paths resolve under.
	PublicPath string
	// ProductImagePath is the directory bare product image filenames resolve under
	// (default: {public}/images/gear/products).
	ProductImagePath string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Directory holding the catalog JSON files")
	gearFile := flag.String("gear-file", "", "Path to the gear catalog JSON")
	manufacturersFile := flag.String("manufacturers-file", "", "Path to the manufacturers JSON")
	saunasFile := flag.String("saunas-file", "", "Path to the saunas JSON")
	guidesPath := flag.String("guides-path", "", "Directory of MDX guide articles")
	watch := flag.String("watch", "", "Reload catalog when data files change (default: true in development)")
	baseURL := flag.String("base-url", "", "Canonical site origin for sitemap URLs")
	publicPath := flag.String("public-path", "", "Static asset root for /-prefixed image paths")
	productImagePath := flag.String("product-image-path", "", "Directory for bare product image filenames")
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	environment := getConfigValue(*env, "ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Environment: environment,
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			BasePath:          getConfigValue(*dataPath, "DATA_PATH", "data"),
			GearFile:          getConfigValue(*gearFile, "GEAR_FILE", ""),
			ManufacturersFile: getConfigValue(*manufacturersFile, "MANUFACTURERS_FILE", ""),
			SaunasFile:        getConfigValue(*saunasFile, "SAUNAS_FILE", ""),
			GuidesPath:        getConfigValue(*guidesPath, "GUIDES_PATH", ""),
			Watch:             getBoolConfigValue(*watch, "DATA_WATCH", environment == "development"),
		},
		Site: SiteConfig{
			BaseURL:          strings.TrimRight(getConfigValue(*baseURL, "BASE_URL", "https://sauna.guide"), "/"),
			PublicPath:       getConfigValue(*publicPath, "PUBLIC_PATH", "public"),
			ProductImagePath: getConfigValue(*productImagePath, "PRODUCT_IMAGE_PATH", ""),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, err
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.BasePath == "" {
		return errors.New("data path cannot be empty after expansion")
	}

	if c.Site.BaseURL == "" {
		return errors.New("base URL cannot be empty")
	}

	return nil
}

// expandPaths makes all filesystem paths absolute and fills file defaults
// that hang off the data and public directories.
func (c *Config) expandPaths() error {
	var err error
	if c.Data.BasePath, err = expandPath(c.Data.BasePath, ""); err != nil {
		return fmt.Errorf("invalid data path: %w", err)
	}
	if c.Site.PublicPath, err = expandPath(c.Site.PublicPath, ""); err != nil {
		return fmt.Errorf("invalid public path: %w", err)
	}

	if c.Data.GearFile == "" {
		c.Data.GearFile = filepath.Join(c.Data.BasePath, "gear-merged.json")
	} else if c.Data.GearFile, err = expandPath(c.Data.GearFile, ""); err != nil {
		return fmt.Errorf("invalid gear file: %w", err)
	}

	if c.Data.ManufacturersFile == "" {
		c.Data.ManufacturersFile = filepath.Join(c.Data.BasePath, "manufacturers.json")
	} else if c.Data.ManufacturersFile, err = expandPath(c.Data.ManufacturersFile, ""); err != nil {
		return fmt.Errorf("invalid manufacturers file: %w", err)
	}

	if c.Data.SaunasFile == "" {
		c.Data.SaunasFile = filepath.Join(c.Data.BasePath, "saunas.json")
	} else if c.Data.SaunasFile, err = expandPath(c.Data.SaunasFile, ""); err != nil {
		return fmt.Errorf("invalid saunas file: %w", err)
	}

	if c.Data.GuidesPath == "" {
		c.Data.GuidesPath = filepath.Join(c.Data.BasePath, "guides")
	} else if c.Data.GuidesPath, err = expandPath(c.Data.GuidesPath, ""); err != nil {
		return fmt.Errorf("invalid guides path: %w", err)
	}

	if c.Site.ProductImagePath == "" {
		c.Site.ProductImagePath = filepath.Join(c.Site.PublicPath, "images", "gear", "products")
	} else if c.Site.ProductImagePath, err = expandPath(c.Site.ProductImagePath, ""); err != nil {
		return fmt.Errorf("invalid product image path: %w", err)
	}

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// parseDurationValue resolves a duration setting from flag, env var, or default.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	str := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", strings.ToLower(envKey), str, err)
	}
	return d, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Env vars take precedence over the .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
