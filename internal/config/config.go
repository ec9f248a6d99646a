package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/atomicstack/weapon-stats/internal/app"
	"github.com/atomicstack/weapon-stats/internal/i18n"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCategory   = "WEAPON_STATS_CATEGORY"
	envLocale     = "WEAPON_STATS_LOCALE"
	envData       = "WEAPON_STATS_DATA"
	envDictionary = "WEAPON_STATS_DICTIONARY"
	envAssets     = "WEAPON_STATS_ASSETS"
	envWidth      = "WEAPON_STATS_WIDTH"
	envHeight     = "WEAPON_STATS_HEIGHT"
	envShowFooter = "WEAPON_STATS_FOOTER"
	envTrace      = "WEAPON_STATS_TRACE"
	envLogFile    = "WEAPON_STATS_LOG_FILE"
	envConfigDir  = "WEAPON_STATS_CONFIG_DIR"
)

const (
	vendorName  = "atomicstack"
	projectName = "weapon-stats"

	dataFileName       = "weapons.yaml"
	dictionaryFileName = "dictionary.yaml"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet(projectName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	category := fs.String("category", envOrDefault(env, envCategory, ""), "initial weapon category (id, label or a fuzzy match)")
	locale := fs.String("locale", envOrDefault(env, envLocale, string(i18n.EN)), "display language: en, pt, a BCP 47 tag or auto")
	data := fs.String("data", envOrDefault(env, envData, ""), "path to a weapons YAML/JSON file (defaults to the built-in dataset)")
	dictionary := fs.String("dictionary", envOrDefault(env, envDictionary, ""), "path to a dictionary YAML file merged over the built-in one")
	assets := fs.String("assets", envOrDefault(env, envAssets, ""), "directory that weapon image references resolve against")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show key help and credits below the prompt")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	dir := configDir(env)
	if *data == "" {
		*data = discover(dir, dataFileName)
	}
	if *dictionary == "" {
		*dictionary = discover(dir, dictionaryFileName)
	}

	cfg := Config{
		App: app.Config{
			Category:       *category,
			Locale:         *locale,
			DataPath:       *data,
			DictionaryPath: *dictionary,
			AssetsDir:      *assets,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"category":   *category,
			"locale":     *locale,
			"data":       *data,
			"dictionary": *dictionary,
			"assets":     *assets,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configDir returns the directory searched for user data files.
func configDir(env map[string]string) string {
	if dir := strings.TrimSpace(env[envConfigDir]); dir != "" {
		return dir
	}
	return xdg.New(vendorName, projectName).ConfigHome()
}

func discover(dir, name string) string {
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return ""
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings that would only fail once the program starts.
func Validate(cfg Config) error {
	if _, err := i18n.ParseLocale(cfg.App.Locale); err != nil {
		return err
	}
	for name, path := range map[string]string{"data": cfg.App.DataPath, "dictionary": cfg.App.DictionaryPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s file: %w", name, err)
		}
	}
	if dir := cfg.App.AssetsDir; dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("assets directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("assets directory: %s is not a directory", dir)
		}
	}
	return nil
}
