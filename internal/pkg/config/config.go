package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (broker, redis) are disabled when their address is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	App       AppConfig
	Mail      MailConfig
	Calendar  CalendarConfig
	Chat      ChatConfig
	Broker    BrokerConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Warsaw"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Reservation-Password"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Warsaw"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// AppConfig holds values used to build links that leave the API (emails, calendar entries).
type AppConfig struct {
	BaseURL string `envconfig:"APP_BASE_URL" required:"true"`
	Domain  string `envconfig:"APP_DOMAIN" default:"localhost"`
}

type MailConfig struct {
	Host        string        `envconfig:"EMAIL_SERVER_HOST" default:""`
	Port        int           `envconfig:"EMAIL_SERVER_PORT" default:"587"`
	User        string        `envconfig:"EMAIL_SERVER_USER" default:""`
	Password    string        `envconfig:"EMAIL_SERVER_PASSWORD" default:""`
	From        string        `envconfig:"EMAIL_FROM" required:"true"`
	FromName    string        `envconfig:"EMAIL_FROM_NAME" default:"Studio"`
	AdminEmail  string        `envconfig:"ADMIN_EMAIL" default:""`
	SitePhone   string        `envconfig:"SITE_PHONE" default:"+48 000 000 000"`
	SendTimeout time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"10s"`
}

// AdminRecipient falls back to the sender address when no dedicated admin inbox is configured.
func (c MailConfig) AdminRecipient() string {
	if c.AdminEmail != "" {
		return c.AdminEmail
	}
	return c.From
}

type CalendarConfig struct {
	FeedToken string `envconfig:"CALENDAR_FEED_TOKEN" default:""`
	Owner     string `envconfig:"CALENDAR_OWNER" default:"Studio"`
	Name      string `envconfig:"CALENDAR_NAME" default:"Rezerwacje"`
	TimeZone  string `envconfig:"CALENDAR_TIMEZONE" default:"Europe/Warsaw"`
}

type ChatConfig struct {
	TypingDebounce  time.Duration `envconfig:"CHAT_TYPING_DEBOUNCE" default:"2s"`
	TypingFreshness time.Duration `envconfig:"CHAT_TYPING_FRESHNESS" default:"5s"`
}

type BrokerConfig struct {
	URL      string `envconfig:"RABBITMQ_URL" default:""`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"events"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"30s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Warsaw",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Warsaw",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		App: AppConfig{
			BaseURL: "http://localhost:3000",
			Domain:  "example.test",
		},
		Mail: MailConfig{
			From:        "studio@example.test",
			FromName:    "Studio",
			AdminEmail:  "admin@example.test",
			SitePhone:   "+48 000 000 000",
			SendTimeout: 2 * time.Second,
		},
		Calendar: CalendarConfig{
			FeedToken: "feed-token",
			Owner:     "Studio",
			Name:      "Rezerwacje",
			TimeZone:  "Europe/Warsaw",
		},
		Chat: ChatConfig{
			TypingDebounce:  2 * time.Second,
			TypingFreshness: 5 * time.Second,
		},
		Broker: BrokerConfig{
			Exchange: "events",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
	}
}
