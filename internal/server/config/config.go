// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags, applied
// in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the testdash server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the JSON API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory user store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Required.
//   - AccessTokenValidityDuration: session token lifetime.
//   - PasswordMinLength: shortest password accepted on register and profile update.
//   - BcryptCost: bcrypt work factor for password hashes.
//   - CORSOrigin: browser origin allowed to call the API.
type Config struct {
	EndpointAddrHTTP            string
	EndpointAddrGRPC            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	PasswordMinLength           int
	BcryptCost                  int
	CORSOrigin                  string
}

// LoadDefaults populates Config with development defaults. SecretKey is left
// empty on purpose: the server must not start without an explicit secret.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.PasswordMinLength = 6
	c.BcryptCost = 10
	c.CORSOrigin = "http://localhost:3000"
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is required (set JWT_SECRET, -s or secret_key)"))
	}
	if c.EndpointAddrHTTP == "" {
		errs = append(errs, errors.New("http endpoint address is required"))
	}
	if c.AccessTokenValidityDuration <= 0 {
		errs = append(errs, fmt.Errorf("token validity must be positive, got %s", c.AccessTokenValidityDuration))
	}
	if c.PasswordMinLength < 1 {
		errs = append(errs, fmt.Errorf("password min length must be at least 1, got %d", c.PasswordMinLength))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
// It panics on unreadable sources; semantic checks are left to Validate.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
