package config

import (
	"time"
)

// DB holds the rate store connection parameters.
// Either Url or the discrete Host/User/Name fields must be set.
type DB struct {
	Driver   string        `envconfig:"DRIVER" default:"postgres"`
	Url      string        `envconfig:"URL"`
	Host     string        `envconfig:"HOST"`
	Port     int           `envconfig:"PORT"`
	User     string        `envconfig:"USER"`
	Password string        `envconfig:"PASSWORD"`
	Name     string        `envconfig:"NAME"`
	Charset  string        `envconfig:"CHARSET" default:"utf8mb4"` // MySQL only
	SSLMode  string        `envconfig:"SSLMODE" default:"require"` // PostgreSQL only
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Provider configures the peer-to-peer order book endpoint.
type Provider struct {
	URL           string        `envconfig:"URL" default:"https://p2p.binance.com/bapi/c2c/v2/friendly/c2c/adv/search"`
	Asset         string        `envconfig:"ASSET" default:"USDT"`
	Fiat          string        `envconfig:"FIAT" default:"BOB"`
	TradeType     string        `envconfig:"TRADE_TYPE" default:"BUY"`
	Rows          int           `envconfig:"ROWS" default:"10"`
	PublisherType string        `envconfig:"PUBLISHER_TYPE" default:"merchant"`
	UserAgent     string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Collector struct {
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration `envconfig:"BASE_DELAY" default:"5s"`
}

// Redis backs the rate limiter when URL is set.
type Redis struct {
	URL       string `envconfig:"URL"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"usdtbob:limiter:"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"60"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[usdtbob]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"0.0.0.0"`
	Port   int    `envconfig:"PORT" default:"5000"`
}

type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development"`
	Server    Server    `envconfig:"SERVER"`
	Log       Log       `envconfig:"LOG"`
	DB        DB        `envconfig:"DATABASE"`
	Provider  Provider  `envconfig:"PROVIDER"`
	Collector Collector `envconfig:"COLLECTOR"`
	Redis     Redis     `envconfig:"REDIS"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
}
