package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig lists the environment variables the server understands. Names
// follow the conventional deployment variables (PORT, JWT_SECRET, DATABASE_URL).
type EnvConfig struct {
	Port              string        `envconfig:"PORT"`
	GRPCAddr          string        `envconfig:"GRPC_ADDR"`
	DatabaseURL       string        `envconfig:"DATABASE_URL"`
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	TokenTTL          time.Duration `envconfig:"TOKEN_TTL"`
	PasswordMinLength *int          `envconfig:"PASSWORD_MIN_LENGTH"`
	BcryptCost        *int          `envconfig:"BCRYPT_COST"`
	CORSOrigin        string        `envconfig:"CORS_ORIGIN"`
}

// parseEnv overlays values present in the environment. A malformed value
// (e.g. TOKEN_TTL=soon) panics like a malformed config file.
func parseEnv(config *Config) {
	var env EnvConfig
	if err := envconfig.Process("", &env); err != nil {
		panic(err)
	}
	env.applyTo(config)
}

func (e *EnvConfig) applyTo(config *Config) {
	if e.Port != "" {
		config.EndpointAddrHTTP = portToAddr(e.Port)
	}
	setString(&config.EndpointAddrGRPC, e.GRPCAddr)
	setString(&config.DatabaseDSN, e.DatabaseURL)
	setString(&config.SecretKey, e.JWTSecret)
	setString(&config.CORSOrigin, e.CORSOrigin)

	if e.TokenTTL != 0 {
		config.AccessTokenValidityDuration = e.TokenTTL
	}
	if e.PasswordMinLength != nil {
		config.PasswordMinLength = *e.PasswordMinLength
	}
	if e.BcryptCost != nil {
		config.BcryptCost = *e.BcryptCost
	}
}

// portToAddr accepts either a bare port ("5000") or a full address.
func portToAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
