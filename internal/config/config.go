package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Calendar  CalendarConfig  `yaml:"calendar"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// CalendarConfig points at the Google Calendar used for study tracking.
// CredentialsFile is an OAuth client secret JSON; TokenFile caches the user
// token. CacheDir holds the local sqlite event cache.
type CalendarConfig struct {
	Enabled         bool   `yaml:"enabled"`
	StudyCalendarID string `yaml:"study_calendar_id"`
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
	CacheDir        string `yaml:"cache_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix DAYMARK_ and underscore-separated paths:
//
//	DAYMARK_SERVER_HOST, DAYMARK_SERVER_PORT,
//	DAYMARK_DB_HOST, DAYMARK_DB_PORT, DAYMARK_DB_NAME,
//	DAYMARK_DB_USER, DAYMARK_DB_PASSWORD, DAYMARK_DB_SSLMODE,
//	DAYMARK_AUTH_API_KEY,
//	DAYMARK_TS_HOSTNAME, DAYMARK_TS_STATE_DIR,
//	DAYMARK_CAL_STUDY_ID, DAYMARK_CAL_CREDENTIALS, DAYMARK_CAL_TOKEN
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DAYMARK_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("DAYMARK_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DAYMARK_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DAYMARK_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DAYMARK_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("DAYMARK_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DAYMARK_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DAYMARK_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("DAYMARK_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("DAYMARK_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("DAYMARK_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("DAYMARK_CAL_STUDY_ID"); v != "" {
		cfg.Calendar.StudyCalendarID = v
	}
	if v := os.Getenv("DAYMARK_CAL_CREDENTIALS"); v != "" {
		cfg.Calendar.CredentialsFile = v
	}
	if v := os.Getenv("DAYMARK_CAL_TOKEN"); v != "" {
		cfg.Calendar.TokenFile = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if c.Calendar.Enabled {
		if c.Calendar.StudyCalendarID == "" {
			return fmt.Errorf("calendar.study_calendar_id is required when calendar is enabled")
		}
		if c.Calendar.CredentialsFile == "" {
			return fmt.Errorf("calendar.credentials_file is required when calendar is enabled")
		}
	}
	return nil
}
