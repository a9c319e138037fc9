// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the configuration of the backend.
type Config struct {
	APIURL    *url.URL
	Port      string
	DataDir   string
	Database  Database
	JWTSecret string
	JWTIssuer string
	GinMode   string
	LogFormat string
}

// Database configures the PostgreSQL connection. If Host is empty,
// an SQLite database in the data directory is used.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

var (
	ErrAPIURLInvalid   = errors.New("API_URL must be an absolute URL")
	ErrSecretMissing   = errors.New("AUTH_JWT_SECRET must be set")
	ErrPortInvalid     = errors.New("PORT must be a number between 1 and 65535")
	ErrDatabaseMissing = errors.New("DB_USER and DB_NAME must be set when DB_HOST is set")
)

// Load reads the passed env files, or ".env" if none are given, and
// returns the configuration. Missing env files are ignored.
func Load(filenames ...string) (Config, error) {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load env file: %w", err)
	}

	return FromEnv()
}

// FromEnv returns the configuration from the environment.
func FromEnv() (Config, error) {
	c := Config{
		Port:      getenv("PORT", "8080"),
		DataDir:   getenv("DATA_DIR", "data"),
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		JWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),
		GinMode:   getenv("GIN_MODE", "release"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
	}

	var errs []error

	apiURL, err := url.Parse(getenv("API_URL", "http://localhost:8080/api"))
	if err != nil || !apiURL.IsAbs() {
		errs = append(errs, ErrAPIURLInvalid)
	}
	c.APIURL = apiURL

	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return c, nil
}

// Validate returns all problems with the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, ErrSecretMissing)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, ErrPortInvalid)
	}

	if c.Database.Host != "" && (c.Database.User == "" || c.Database.Name == "") {
		errs = append(errs, ErrDatabaseMissing)
	}

	return errors.Join(errs...)
}

// UsePostgres reports if a PostgreSQL server is configured.
func (c Config) UsePostgres() bool {
	return c.Database.Host != ""
}

// DSN returns the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// SQLitePath returns the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "pocket-ledger.db") + "?_pragma=foreign_keys(1)"
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
