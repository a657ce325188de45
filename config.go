package enterprise

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/a8m/envsubst"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL        = "https://localhost:9443"
	DefaultUsername       = "admin@redis.local"
	DefaultTimeout        = 30 * time.Second
	DefaultMaxConnections = 32
)

// Environment variables read by ConfigFromEnv.
const (
	EnvURL      = "REDIS_ENTERPRISE_URL"
	EnvUser     = "REDIS_ENTERPRISE_USER"
	EnvPassword = "REDIS_ENTERPRISE_PASSWORD"
	EnvInsecure = "REDIS_ENTERPRISE_INSECURE"
)

// Config holds the connection settings of a Client. It is copied at
// construction and never changes afterwards.
type Config struct {
	// BaseURL of the cluster REST API, e.g. https://cluster:9443.
	BaseURL  string `yaml:"base_url" validate:"required,http_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Insecure skips TLS certificate verification (self-signed clusters).
	Insecure bool `yaml:"insecure"`
	// Timeout bounds a whole request including reading the body. Zero means DefaultTimeout.
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	UserAgent string        `yaml:"user_agent"`
	// MaxConnections bounds concurrent requests and pooled connections. Zero means DefaultMaxConnections.
	MaxConnections int `yaml:"max_connections" validate:"gte=0,lte=1024"`
}

// DefaultConfig returns the defaults used when a field is left empty.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Username:       DefaultUsername,
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent(),
		MaxConnections: DefaultMaxConnections,
	}
}

// Credentials returns the basic-auth credentials of the config.
func (c Config) Credentials() Credentials {
	return Credentials{Username: c.Username, Password: c.Password}
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent()
	}
	if c.MaxConnections == 0 {
		c.MaxConnections = DefaultMaxConnections
	}
	return c
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the config without touching the network.
func (c Config) Validate() error {
	if problems := c.problems(); len(problems) > 0 {
		return configError("configuration validation failed", fmt.Errorf("validation errors: %v", problems))
	}
	return nil
}

func (c Config) problems() []string {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
		}
	}
	return append(problems, validateBaseURL(c.BaseURL)...)
}

func validateBaseURL(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return []string{fmt.Sprintf("base url %q is malformed: %v", raw, err)}
	}
	var problems []string
	if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("base url %q must use http or https", raw))
	}
	if u.Host == "" {
		problems = append(problems, fmt.Sprintf("base url %q has no host", raw))
	}
	if u.RawQuery != "" || u.Fragment != "" {
		problems = append(problems, fmt.Sprintf("base url %q must not carry a query or fragment", raw))
	}
	return problems
}

// LoadConfig reads a YAML config file. ${VAR} references are expanded from
// the environment before decoding; unset fields keep DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := envsubst.ReadFile(path)
	if err != nil {
		return cfg, configError(fmt.Sprintf("failed to read config file %s", path), err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, configError(fmt.Sprintf("failed to decode config file %s", path), err)
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from REDIS_ENTERPRISE_* variables. A .env
// file in the working directory is loaded first when present; variables
// already set in the process take precedence.
func ConfigFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, configError("failed to load .env file", err)
	}

	cfg := DefaultConfig()
	if v := os.Getenv(EnvURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		cfg.Username = v
	}

	password, ok := os.LookupEnv(EnvPassword)
	if !ok {
		return Config{}, configError(EnvPassword+" is not set", nil)
	}
	cfg.Password = password

	if v := os.Getenv(EnvInsecure); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, configError("invalid "+EnvInsecure+" value", err)
		}
		cfg.Insecure = insecure
	}
	return cfg, nil
}
