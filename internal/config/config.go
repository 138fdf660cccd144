package config

import (
	"net/url"
	"os"
)

// Config carries the connection settings for the store's database. The
// three required values come from positional arguments; host, password
// and sslmode come from the environment with the client's historical
// defaults (localhost, empty password).
type Config struct {
	DBName     string
	DBPort     string
	DBUser     string
	DBHost     string
	DBPassword string
	SSLMode    string
}

func Load(dbname, port, user string) Config {
	return Config{
		DBName:     dbname,
		DBPort:     port,
		DBUser:     user,
		DBHost:     getenv("PGHOST", "localhost"),
		DBPassword: getenv("PGPASSWORD", ""),
		SSLMode:    getenv("PGSSLMODE", "disable"),
	}
}

// DSN renders the pgx connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
