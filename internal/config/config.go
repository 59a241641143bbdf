package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFolderName is the bookmark folder served when none is configured.
const DefaultFolderName = "看过"

type Config struct {
	ListenPort      string        // ex: ":5173"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	BookmarksPath string // path to the Chrome Bookmarks JSON file
	FolderName    string // name of the watched folder to extract

	// Redis (optional serve-history; empty addr = disabled)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts
	HistoryLimit        int           // serve summaries kept in redis

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

// fileOverrides is the optional YAML config file shape. Every field is a
// pointer so absent keys fall through to env/defaults.
type fileOverrides struct {
	ListenPort    *string `yaml:"listen_port"`
	LogLevel      *string `yaml:"log_level"`
	PrettyLog     *bool   `yaml:"pretty_log"`
	BookmarksPath *string `yaml:"bookmarks_path"`
	FolderName    *string `yaml:"folder_name"`
	RedisAddr     *string `yaml:"redis_addr"`
	AllowedHosts  *string `yaml:"allowed_hosts"`
	AllowedCIDRS  *string `yaml:"allowed_cidrs"`
	TrustProxy    *bool   `yaml:"trust_proxy"`
}

// Load builds the configuration from environment variables, applying values
// from the optional WATCHED_CONFIG_FILE YAML file where the environment is
// silent. BOOKMARKS_PATH keeps its historical (unprefixed) name.
func Load() *Config {
	cfg := &Config{
		ListenPort:      getenv("WATCHED_LISTEN_PORT", ":5173"),
		ShutdownTimeout: mustDuration("WATCHED_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("WATCHED_LOG_LEVEL", "info"),
		PrettyLog: mustBool("WATCHED_PRETTY_LOG", true),

		BookmarksPath: getenv("BOOKMARKS_PATH", DefaultBookmarksPath()),
		FolderName:    getenv("WATCHED_FOLDER_NAME", DefaultFolderName),

		RedisAddr:           getenv("WATCHED_REDIS_ADDR", ""),
		RedisUser:           getenv("WATCHED_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("WATCHED_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("WATCHED_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		HistoryLimit:        getenvInt("WATCHED_HISTORY_LIMIT", 50),

		AllowedHosts: splitAndTrim(getenv("WATCHED_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("WATCHED_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("WATCHED_TRUST_PROXY", false),
	}

	if file := os.Getenv("WATCHED_CONFIG_FILE"); file != "" {
		if err := applyFile(cfg, file); err != nil {
			log.Printf("[WARN] config file %s ignored: %v", file, err)
		}
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// applyFile overlays YAML values for keys whose environment variables are
// unset. Environment always wins.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f fileOverrides
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	setString := func(envKey string, dst *string, src *string) {
		if src != nil && os.Getenv(envKey) == "" {
			*dst = *src
		}
	}
	setBool := func(envKey string, dst *bool, src *bool) {
		if src != nil && os.Getenv(envKey) == "" {
			*dst = *src
		}
	}

	setString("WATCHED_LISTEN_PORT", &cfg.ListenPort, f.ListenPort)
	setString("WATCHED_LOG_LEVEL", &cfg.LogLevel, f.LogLevel)
	setBool("WATCHED_PRETTY_LOG", &cfg.PrettyLog, f.PrettyLog)
	setString("BOOKMARKS_PATH", &cfg.BookmarksPath, f.BookmarksPath)
	setString("WATCHED_FOLDER_NAME", &cfg.FolderName, f.FolderName)
	setString("WATCHED_REDIS_ADDR", &cfg.RedisAddr, f.RedisAddr)
	setBool("WATCHED_TRUST_PROXY", &cfg.TrustProxy, f.TrustProxy)

	if f.AllowedHosts != nil && os.Getenv("WATCHED_ALLOWED_HOSTS") == "" {
		cfg.AllowedHosts = splitAndTrim(*f.AllowedHosts)
	}
	if f.AllowedCIDRS != nil && os.Getenv("WATCHED_ALLOWED_CIDRS") == "" {
		cfg.AllowedCIDRS = splitAndTrim(*f.AllowedCIDRS)
	}

	return nil
}

// DefaultBookmarksPath returns the default Chrome profile bookmarks file for
// the current OS.
func DefaultBookmarksPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "Bookmarks")
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default", "Bookmarks")
		}
		return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "Bookmarks")
	default:
		return filepath.Join(home, ".config", "google-chrome", "Default", "Bookmarks")
	}
}

// RedisEnabled reports whether the optional serve-history store is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
