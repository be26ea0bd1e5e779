package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Google    GoogleConfig
	Search    SearchConfig
	Selection SelectionConfig
	RallyAPI  RallyAPIConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type GoogleConfig struct {
	APIKey         string
	GeocodeBaseURL string
	PlacesBaseURL  string
	RequestTimeout int
}

type SearchConfig struct {
	RadiusMeters int
	MaxResults   int
	CacheTTL     time.Duration
	Country      string
	MockFallback bool
}

type SelectionConfig struct {
	MaxSpots int
	MinSpots int
	DraftTTL time.Duration
}

type RallyAPIConfig struct {
	BaseURL        string
	Token          string
	RequestTimeout int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Google: GoogleConfig{
			APIKey:         viper.GetString("GOOGLE_MAPS_API_KEY"),
			GeocodeBaseURL: viper.GetString("GOOGLE_GEOCODE_BASE_URL"),
			PlacesBaseURL:  viper.GetString("GOOGLE_PLACES_BASE_URL"),
			RequestTimeout: viper.GetInt("GOOGLE_REQUEST_TIMEOUT"),
		},
		Search: SearchConfig{
			RadiusMeters: viper.GetInt("SEARCH_RADIUS_METERS"),
			MaxResults:   viper.GetInt("SEARCH_MAX_RESULTS"),
			CacheTTL:     time.Duration(viper.GetInt("SPOT_CACHE_TTL_HOURS")) * time.Hour,
			Country:      viper.GetString("SEARCH_COUNTRY"),
			MockFallback: viper.GetBool("SEARCH_MOCK_FALLBACK"),
		},
		Selection: SelectionConfig{
			MaxSpots: viper.GetInt("SELECTION_MAX_SPOTS"),
			MinSpots: viper.GetInt("SELECTION_MIN_SPOTS"),
			DraftTTL: time.Duration(viper.GetInt("SELECTION_DRAFT_TTL_HOURS")) * time.Hour,
		},
		RallyAPI: RallyAPIConfig{
			BaseURL:        viper.GetString("RALLY_API_BASE_URL"),
			Token:          viper.GetString("RALLY_API_TOKEN"),
			RequestTimeout: viper.GetInt("RALLY_API_REQUEST_TIMEOUT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Google.GeocodeBaseURL == "" {
		cfg.Google.GeocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode"
	}
	if cfg.Google.PlacesBaseURL == "" {
		cfg.Google.PlacesBaseURL = "https://maps.googleapis.com/maps/api/place"
	}
	if cfg.Google.RequestTimeout == 0 {
		cfg.Google.RequestTimeout = 10
	}
	if cfg.Search.RadiusMeters == 0 {
		cfg.Search.RadiusMeters = 2000
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 5
	}
	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = 7 * 24 * time.Hour
	}
	if cfg.Search.Country == "" {
		cfg.Search.Country = "Japan"
	}
	if cfg.Selection.MaxSpots == 0 {
		cfg.Selection.MaxSpots = 5
	}
	if cfg.Selection.MinSpots == 0 {
		cfg.Selection.MinSpots = 3
	}
	if cfg.Selection.DraftTTL == 0 {
		cfg.Selection.DraftTTL = 24 * time.Hour
	}
	if cfg.RallyAPI.RequestTimeout == 0 {
		cfg.RallyAPI.RequestTimeout = 10
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// HasDatabase reports whether a Postgres connection is configured at all.
// Without one the spot cache runs in degraded (no-op) mode.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != ""
}
