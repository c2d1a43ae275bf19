package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnvOverrides replaces configuration values with their environment
// counterparts. Unset variables leave the YAML/default value in place.
func applyEnvOverrides(c *Config) error {
	stringVars := map[string]*string{
		"SERVER_PORT":                 &c.Server.Port,
		"SERVER_MODE":                 &c.Server.Mode,
		"DB_DRIVER":                   &c.Database.Driver,
		"DB_HOST":                     &c.Database.Host,
		"DB_PORT":                     &c.Database.Port,
		"DB_USER":                     &c.Database.User,
		"DB_PASSWORD":                 &c.Database.Password,
		"DB_NAME":                     &c.Database.DBName,
		"DB_SSLMODE":                  &c.Database.SSLMode,
		"DB_CONN_MAX_LIFETIME":        &c.Database.ConnMaxLifetime,
		"JWT_SECRET":                  &c.JWT.Secret,
		"JWT_ACCESS_TOKEN_EXPIRATION": &c.JWT.AccessTokenExpiration,
		"JWT_ISSUER":                  &c.JWT.Issuer,
		"SENTRY_DSN":                  &c.Sentry.DSN,
		"SENTRY_ENVIRONMENT":          &c.Sentry.Environment,
		"LOG_LEVEL":                   &c.Logging.Level,
		"LOG_FORMAT":                  &c.Logging.Format,
	}
	for name, target := range stringVars {
		if value, ok := os.LookupEnv(name); ok {
			*target = value
		}
	}

	intVars := map[string]*int{
		"DB_MAX_IDLE_CONNS": &c.Database.MaxIdleConns,
		"DB_MAX_OPEN_CONNS": &c.Database.MaxOpenConns,
	}
	for name, target := range intVars {
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		*target = parsed
	}

	return nil
}
