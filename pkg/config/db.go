package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/amirasaad/usdtbob/pkg/domain"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Validate reports every missing or invalid setting needed to reach the store.
func (c *App) Validate() error {
	var missing []string
	missing = append(missing, c.DB.missing()...)
	if c.Provider.URL == "" {
		missing = append(missing, "PROVIDER_URL")
	}
	if c.Collector.MaxAttempts < 1 {
		missing = append(missing, "COLLECTOR_MAX_ATTEMPTS (must be >= 1)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrConfigIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

func (d DB) missing() []string {
	switch d.Driver {
	case DriverPostgres, DriverMySQL:
		if d.Url != "" {
			return nil
		}
		var missing []string
		if d.Host == "" {
			missing = append(missing, "DATABASE_HOST")
		}
		if d.User == "" {
			missing = append(missing, "DATABASE_USER")
		}
		if d.Name == "" {
			missing = append(missing, "DATABASE_NAME")
		}
		return missing
	case DriverSQLite:
		if d.Url == "" && d.Name == "" {
			return []string{"DATABASE_NAME"}
		}
		return nil
	default:
		return []string{fmt.Sprintf("DATABASE_DRIVER (unsupported %q)", d.Driver)}
	}
}

// DSN renders the driver specific data source name.
func (d DB) DSN() string {
	if d.Url != "" {
		return d.Url
	}
	switch d.Driver {
	case DriverMySQL:
		port := d.Port
		if port == 0 {
			port = 3306
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, port, d.Name, url.QueryEscape(d.Charset))
	case DriverSQLite:
		return d.Name
	default:
		port := d.Port
		if port == 0 {
			port = 5432
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			d.Host, d.User, d.Password, d.Name, port, d.SSLMode)
	}
}

// Redacted returns the connection parameters safe for display.
func (d DB) Redacted() map[string]any {
	out := map[string]any{
		"driver":   d.Driver,
		"host":     d.Host,
		"port":     d.Port,
		"user":     d.User,
		"database": d.Name,
		"timeout":  d.Timeout.String(),
	}
	if d.Password != "" {
		out["password"] = "***"
	}
	if d.Url != "" {
		out["url"] = redactURL(d.Url)
	}
	switch d.Driver {
	case DriverMySQL:
		out["charset"] = d.Charset
	case DriverPostgres:
		out["sslmode"] = d.SSLMode
	}
	return out
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return maskValue(raw)
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}
