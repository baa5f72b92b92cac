package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Supported DB_TYPE values.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSupabase = "supa"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds the connection options and pool tuning for the relational store.
type DatabaseConfig struct {
	Driver          string
	Host            string
	User            string
	Password        string
	Name            string
	Port            int
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// DeleteCascade removes link rows together with the project or technology they reference.
	DeleteCascade bool
}

// Database builds the database settings from the environment map, applying defaults for anything unset.
func Database(c map[string]string) DatabaseConfig {
	driver := strings.ToLower(GetString(c, "DB_TYPE", DriverMySQL))

	defaultPort := 3306
	defaultSSLMode := "disable"
	switch driver {
	case DriverPostgres:
		defaultPort = 5432
	case DriverSupabase:
		defaultPort = 5432
		defaultSSLMode = "require"
	}

	return DatabaseConfig{
		Driver:          driver,
		Host:            GetString(c, "DB_HOST", "localhost"),
		User:            GetString(c, "DB_USER", "root"),
		Password:        GetString(c, "DB_PASSWORD", "password"),
		Name:            GetString(c, "DB_NAME", "portfolio"),
		Port:            GetInt(c, "DB_PORT", defaultPort),
		SSLMode:         GetString(c, "DB_SSLMODE", defaultSSLMode),
		MaxOpenConns:    GetInt(c, "DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    GetInt(c, "DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: GetSeconds(c, "DB_CONN_MAX_LIFETIME_SECONDS", 300),
		DeleteCascade:   GetBool(c, "DELETE_CASCADE", false),
	}
}

// DSN renders the connection string expected by the configured driver.
// For sqlite the database name is used as the file path.
func (d DatabaseConfig) DSN() (string, error) {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, net.JoinHostPort(d.Host, strconv.Itoa(d.Port)), d.Name), nil
	case DriverPostgres, DriverSupabase:
		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(d.User), url.QueryEscape(d.Password),
			net.JoinHostPort(d.Host, strconv.Itoa(d.Port)), d.Name, d.SSLMode), nil
	case DriverSQLite:
		return d.Name, nil
	default:
		return "", fmt.Errorf("unsupported DB_TYPE %q", d.Driver)
	}
}
