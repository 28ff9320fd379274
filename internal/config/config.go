package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/uniqid/internal/errors"
	"github.com/vango-dev/uniqid/pkg/uid"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "uniqid.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultLivePath is the default websocket route.
	DefaultLivePath = "/_live"

	// DefaultMetricsPath is the default Prometheus scrape route.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "uniqid"
)

// Tracing exporters.
const (
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

// yamlFileNames are tried, in order, after ConfigFileName.
var yamlFileNames = []string{"uniqid.yaml", "uniqid.yml"}

// Config represents the complete uniqid configuration.
type Config struct {
	// Prefix is the default identifier prefix.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Scope is "request" (fresh generator per SSR request) or "process"
	// (one generator shared by every request).
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`

	Server  ServerConfig  `json:"server" yaml:"server"`
	Render  RenderConfig  `json:"render" yaml:"render"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`

	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	LivePath string `json:"livePath,omitempty" yaml:"livePath,omitempty"`
}

// RenderConfig contains server renderer settings.
type RenderConfig struct {
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Exporter    string `json:"exporter,omitempty" yaml:"exporter,omitempty"`
	ServiceName string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Prefix: uid.DefaultPrefix,
		Scope:  uid.ScopeRequest.String(),
		Server: ServerConfig{
			Host:     DefaultHost,
			Port:     DefaultPort,
			LivePath: DefaultLivePath,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			Exporter:    ExporterStdout,
			ServiceName: "uniqid",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for uniqid.json, then uniqid.yaml and uniqid.yml.
func Load(dir string) (*Config, error) {
	for _, name := range append([]string{ConfigFileName}, yamlFileNames...) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No uniqid.json or uniqid.yaml found in " + dir).
		WithSuggestion("Run 'uniqid init' or create uniqid.json manually")
}

// LoadFile reads configuration from the specified file path. The format
// follows the extension: .yaml and .yml are YAML, anything else is JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid YAML")
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid JSON")
		}
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as YAML or JSON by extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = uid.DefaultPrefix
	}
	if c.Scope == "" {
		c.Scope = uid.ScopeRequest.String()
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LivePath == "" {
		c.Server.LivePath = DefaultLivePath
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = ExporterStdout
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.GeneratorScope(); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	switch strings.ToLower(c.Tracing.Exporter) {
	case ExporterStdout, ExporterNone, "":
	default:
		return errors.New("E123").
			WithDetail("Unknown exporter " + strconv.Quote(c.Tracing.Exporter))
	}
	return nil
}

// GeneratorScope parses Scope.
func (c *Config) GeneratorScope() (uid.Scope, error) {
	return uid.ParseScope(c.Scope)
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range append([]string{ConfigFileName}, yamlFileNames...) {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or E141.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No uniqid.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
