// Package config loads and normalises the site configuration: a JSON file
// overlaid with CONVERTX_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CONVERTX_"

const (
	defaultAddr          = "127.0.0.1"
	defaultPort          = ":4173"
	defaultAssetsDir     = "ui/dist"
	defaultLogLevel      = "info"
	defaultSiteName      = "ConvertX"
	defaultContactEmail  = "agencyconverx@gmail.com"
	defaultRelayEndpoint = "https://api.web3forms.com/submit"
	defaultRelayTimeout  = 15
	defaultBookingURL    = "https://cal.com/convertx-agency-wqnnbv/discovery-call?layout=month_view&theme=dark"
	qualifiedSubject     = "Contact Form Submission"
	disqualifiedSubject  = "Brand Intake Form Submission"
	defaultSiteDesc      = "We scale e-commerce brands through performance marketing, business consulting and ads."
	placeholderAccessKey = "YOUR_WEB3FORMS_ACCESS_KEY"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `json:"addr" env:"ADDR"`
	Port string `json:"port" env:"PORT"`
}

// AppConfig configures asset locations and logging.
type AppConfig struct {
	Assets   string `json:"assets" env:"ASSETS"`
	Logs     string `json:"logs" env:"LOGS"`
	LogLevel string `json:"log_level" env:"LOG_LEVEL"`
	// Content optionally points at a YAML file replacing the embedded site content.
	Content string `json:"content" env:"CONTENT"`
}

// SiteConfig holds the public identity of the site.
type SiteConfig struct {
	Name          string `json:"name" env:"NAME"`
	Description   string `json:"description" env:"DESCRIPTION"`
	CanonicalHost string `json:"canonical_host" env:"CANONICAL_HOST"`
	ContactEmail  string `json:"contact_email" env:"CONTACT_EMAIL"`
}

// FormRelay is the relay credential and subject line of one lead form.
type FormRelay struct {
	AccessKey string `json:"access_key" env:"ACCESS_KEY"`
	Subject   string `json:"subject" env:"SUBJECT"`
}

// FormsRelay groups the per-form relay settings.
type FormsRelay struct {
	Qualified    FormRelay `json:"qualified" envPrefix:"QUALIFIED_"`
	Disqualified FormRelay `json:"disqualified" envPrefix:"DISQUALIFIED_"`
}

// RelayConfig configures the form-relay client.
type RelayConfig struct {
	Endpoint       string     `json:"endpoint" env:"ENDPOINT"`
	TimeoutSeconds int        `json:"timeout_seconds" env:"TIMEOUT_SECONDS"`
	Forms          FormsRelay `json:"forms" envPrefix:"FORM_"`
}

// Timeout returns the relay timeout as a duration.
func (r RelayConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// FeatureFlags toggles functionality that exists but ships disabled.
type FeatureFlags struct {
	Attachments  bool   `json:"attachments" env:"ATTACHMENTS"`
	BookingEmbed bool   `json:"booking_embed" env:"BOOKING_EMBED"`
	BookingURL   string `json:"booking_url" env:"BOOKING_URL"`
}

// Config represents the combined runtime settings.
type Config struct {
	Server   ServerConfig `json:"server" envPrefix:"SERVER_"`
	App      AppConfig    `json:"app" envPrefix:"APP_"`
	Site     SiteConfig   `json:"site" envPrefix:"SITE_"`
	Relay    RelayConfig  `json:"relay" envPrefix:"RELAY_"`
	Features FeatureFlags `json:"features" envPrefix:"FEATURE_"`
}

// Load reads the JSON config at path (a missing file yields the defaults) and
// applies environment overrides from the process environment.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, env.ToMap(os.Environ()))
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// Default returns the configuration used when no file or environment is present.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = defaultAddr
	}
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = defaultPort
	}
	if cfg.App.Assets == "" {
		cfg.App.Assets = defaultAssetsDir
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Site.Name == "" {
		cfg.Site.Name = defaultSiteName
	}
	if cfg.Site.Description == "" {
		cfg.Site.Description = defaultSiteDesc
	}
	if cfg.Site.ContactEmail == "" {
		cfg.Site.ContactEmail = defaultContactEmail
	}
	if cfg.Relay.Endpoint == "" {
		cfg.Relay.Endpoint = defaultRelayEndpoint
	}
	if cfg.Relay.TimeoutSeconds <= 0 {
		cfg.Relay.TimeoutSeconds = defaultRelayTimeout
	}
	if cfg.Relay.Forms.Qualified.Subject == "" {
		cfg.Relay.Forms.Qualified.Subject = qualifiedSubject
	}
	if cfg.Relay.Forms.Disqualified.Subject == "" {
		cfg.Relay.Forms.Disqualified.Subject = disqualifiedSubject
	}
	if cfg.Relay.Forms.Qualified.AccessKey == placeholderAccessKey {
		cfg.Relay.Forms.Qualified.AccessKey = ""
	}
	if cfg.Relay.Forms.Disqualified.AccessKey == placeholderAccessKey {
		cfg.Relay.Forms.Disqualified.AccessKey = ""
	}
	if cfg.Features.BookingURL == "" {
		cfg.Features.BookingURL = defaultBookingURL
	}
}

// Listen joins the server address and port into a listen address.
func (c Config) Listen() string {
	addr := strings.TrimSpace(c.Server.Addr)
	port := strings.TrimSpace(c.Server.Port)
	if port != "" && !strings.HasPrefix(port, ":") {
		return addr + ":" + port
	}
	return addr + port
}

// MissingAccessKeys lists the forms whose relay access key is not configured.
func (c Config) MissingAccessKeys() []string {
	var missing []string
	if strings.TrimSpace(c.Relay.Forms.Qualified.AccessKey) == "" {
		missing = append(missing, "qualified")
	}
	if strings.TrimSpace(c.Relay.Forms.Disqualified.AccessKey) == "" {
		missing = append(missing, "disqualified")
	}
	return missing
}
