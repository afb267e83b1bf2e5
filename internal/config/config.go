package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/kovi/agls/internal/agls"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port" env:"AGLS_PORT"`
	} `yaml:"server"`

	Database struct {
		File string `yaml:"file" env:"AGLS_DB_FILE"`
	} `yaml:"database"`

	Audit struct {
		File string `yaml:"file" env:"AGLS_AUDIT_LOG"`
	} `yaml:"audit"`

	Site struct {
		BaseURL       string `yaml:"base_url" env:"AGLS_BASE_URL"`
		DefaultLocale string `yaml:"default_locale" env:"AGLS_DEFAULT_LOCALE"`
		SummaryLength int    `yaml:"summary_length" env:"AGLS_SUMMARY_LENGTH"`
		ContentDir    string `yaml:"content_dir" env:"AGLS_CONTENT_DIR"`
		SyncInterval  int    `yaml:"sync_interval" env:"AGLS_SYNC_INTERVAL"` // seconds, 0 disables
		Generator     string `yaml:"generator" env:"AGLS_GENERATOR"`
	} `yaml:"site"`

	AGLS struct {
		Schemas           []agls.LinkSchema           `yaml:"schemas"`
		Metadata          []agls.MetaSchema           `yaml:"metadata"`
		PageTypes         map[string]agls.DateFormats `yaml:"page_types"`
		DefaultDateFormat string                      `yaml:"default_date_format" env:"AGLS_DEFAULT_DATE_FORMAT"`
	} `yaml:"agls"`
}

// NewConfig sets the hardcoded "Factory Defaults"
func NewConfig() *Config {
	cfg := &Config{}

	cfg.Server.Port = 8080
	cfg.Database.File = "agls.db"
	cfg.Audit.File = "audit.log"
	cfg.Site.BaseURL = "http://localhost:8080"
	cfg.Site.DefaultLocale = "en-AU"
	cfg.Site.SummaryLength = 255
	cfg.Site.Generator = "agls"

	cfg.AGLS.Schemas = agls.DefaultSchemas()
	cfg.AGLS.Metadata = agls.DefaultMetadata()
	cfg.AGLS.PageTypes = map[string]agls.DateFormats{
		"Page": {Created: "2006-01-02", Modified: "2006-01-02"},
	}
	cfg.AGLS.DefaultDateFormat = agls.DefaultDateLayout

	return cfg
}

func (c *Config) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Unmarshal will only overwrite fields present in the YAML
	return yaml.Unmarshal(data, c)
}

func (c *Config) Finalize() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port must be positive")
	}

	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.base_url: %w", fmt.Errorf("not an absolute URL: %q", c.Site.BaseURL))
	}
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")

	if c.Site.DefaultLocale == "" {
		return errors.New("site.default_locale is required")
	}
	tag, err := language.Parse(strings.ReplaceAll(c.Site.DefaultLocale, "_", "-"))
	if err != nil {
		return fmt.Errorf("site.default_locale: %w", err)
	}
	c.Site.DefaultLocale = tag.String()

	if c.Site.SummaryLength <= 0 {
		return fmt.Errorf("site.summary_length: %w", fmt.Errorf("invalid value %d", c.Site.SummaryLength))
	}

	if c.Site.SyncInterval < 0 {
		return fmt.Errorf("site.sync_interval: %w", fmt.Errorf("invalid value %d", c.Site.SyncInterval))
	}

	if c.AGLS.DefaultDateFormat == "" {
		c.AGLS.DefaultDateFormat = agls.DefaultDateLayout
	}
	return nil
}

// DateFormats answers the configured layouts for a page type, zero when none exist.
func (c *Config) DateFormats(pageType string) agls.DateFormats {
	return c.AGLS.PageTypes[pageType]
}

// UnknownProperties lists metadata properties that will always render without content.
func (c *Config) UnknownProperties() []string {
	var out []string
	for _, m := range c.AGLS.Metadata {
		if m.Property != "" && !agls.IsProperty(m.Property) {
			out = append(out, m.Property)
		}
	}
	return out
}

// LoadEnv attempts to fill the struct from environment variables.
// It returns an error if a value exists but cannot be converted to the target type.
func (c *Config) LoadEnv() error {
	return loadRecursive(reflect.ValueOf(c).Elem())
}

func loadRecursive(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		fieldV := v.Field(i)
		fieldT := t.Field(i)

		if fieldV.Kind() == reflect.Struct {
			if err := loadRecursive(fieldV); err != nil {
				return err
			}
			continue
		}

		tag := fieldT.Tag.Get("env")
		if tag == "" {
			continue
		}

		if val := os.Getenv(tag); val != "" {
			if err := setField(fieldV, tag, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func setField(field reflect.Value, tagName, val string) error {
	if !field.CanSet() {
		return fmt.Errorf("field for %s is not settable (check exported fields)", tagName)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(val)

	case reflect.Int:
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("environment variable %s: expected integer, got %q", tagName, val)
		}
		field.SetInt(int64(i))

	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("environment variable %s: expected boolean (true/false/1/0), got %q", tagName, val)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(val, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			field.Set(reflect.ValueOf(parts))
		} else {
			return fmt.Errorf("unsupported slice type for %s", tagName)
		}

	default:
		return fmt.Errorf("unsupported type %s for environment variable %s", field.Kind(), tagName)
	}

	return nil
}
