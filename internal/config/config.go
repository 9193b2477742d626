package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/composearea/internal/config/layer"
	"github.com/dshills/composearea/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "COMPOSEAREA_"

// Config is the effective configuration.
type Config struct {
	Logging LoggingConfig
	Area    AreaConfig

	layers layer.Stack
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string
}

// AreaConfig holds the settings of the bound compose area.
type AreaConfig struct {
	WrapperID    string
	WrapperClass string
	InitialHTML  string
	NoTrim       bool
}

// Defaults returns the built-in default settings.
func Defaults() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level": "info",
		},
		"area": map[string]any{
			"wrapperId":    "",
			"wrapperClass": "cawrapper initialized",
			"initialHtml":  "",
			"noTrim":       false,
		},
	}
}

type options struct {
	fs        loader.FileSystem
	envPrefix string
	overrides map[string]any
}

// Option configures Load.
type Option func(*options)

// WithFileSystem sets the file system config files are read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnvPrefix sets the environment variable prefix. An empty prefix
// disables the environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithOverride sets a value in the command-line layer, which overrides
// every other layer.
func WithOverride(path string, value any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		layer.SetByPath(o.overrides, path, value)
	}
}

// Load builds the configuration from the defaults, the file at path (if
// path is not empty), the environment and any overrides.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS(), envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &Config{}
	cfg.layers.Add(layer.NewLayer(layer.SourceBuiltin, Defaults()))

	if path != "" {
		data, err := loadFile(o.fs, path)
		if err != nil {
			return nil, err
		}
		l := layer.NewLayer(layer.SourceFile, data)
		l.Path = path
		cfg.layers.Add(l)
	}

	if o.envPrefix != "" {
		data, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		cfg.layers.Add(layer.NewLayer(layer.SourceEnv, data))
	}

	if o.overrides != nil {
		cfg.layers.Add(layer.NewLayer(layer.SourceArgs, o.overrides))
	}

	if err := cfg.decode(cfg.layers.Merge()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(fs loader.FileSystem, path string) (map[string]any, error) {
	if _, err := fs.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var l loader.Loader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		l = loader.NewTOMLLoaderWithFS(fs, path)
	case ".yaml", ".yml":
		l = loader.NewYAMLLoaderWithFS(fs, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return l.Load()
}

func (c *Config) decode(data map[string]any) error {
	var err error
	if c.Logging.Level, err = stringAt(data, "logging.level"); err != nil {
		return err
	}
	if c.Area.WrapperID, err = stringAt(data, "area.wrapperId"); err != nil {
		return err
	}
	if c.Area.WrapperClass, err = stringAt(data, "area.wrapperClass"); err != nil {
		return err
	}
	if c.Area.InitialHTML, err = stringAt(data, "area.initialHtml"); err != nil {
		return err
	}
	if c.Area.NoTrim, err = boolAt(data, "area.noTrim"); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrValidationFailed, c.Logging.Level)
	}
	return nil
}

// Source returns the name of the layer that supplies the value at path,
// or "" if no layer sets it.
func (c *Config) Source(path string) string {
	_, l, ok := c.layers.Get(path)
	if !ok {
		return ""
	}
	return l.Name
}

// Settings returns the effective settings as sorted "path = value" lines.
func (c *Config) Settings() []string {
	flat := layer.FlattenMap(c.layers.Merge())
	lines := make([]string, 0, len(flat))
	for path, val := range flat {
		lines = append(lines, fmt.Sprintf("%s = %v (%s)", path, val, c.Source(path)))
	}
	sort.Strings(lines)
	return lines
}

func stringAt(data map[string]any, path string) (string, error) {
	val, ok := layer.GetByPath(data, path)
	if !ok {
		return "", nil
	}
	switch v := val.(type) {
	case string:
		return v, nil
	case int64, float64:
		// Unquoted numbers in a file; wrapperId = 42 is still a valid id.
		return fmt.Sprint(v), nil
	default:
		return "", &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", val)}
	}
}

func boolAt(data map[string]any, path string) (bool, error) {
	val, ok := layer.GetByPath(data, path)
	if !ok {
		return false, nil
	}
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, ok := parseBool(v)
		if !ok {
			return false, &TypeError{Path: path, Expected: "bool", Actual: "string"}
		}
		return b, nil
	case int64:
		return v != 0, nil
	default:
		return false, &TypeError{Path: path, Expected: "bool", Actual: fmt.Sprintf("%T", val)}
	}
}

// parseBool accepts the strconv forms plus yes/no and on/off, as written in
// environment variables.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, true
	case "no", "off", "":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}
