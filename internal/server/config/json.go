package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/testdash/internal/flagx"
	"github.com/dmitrijs2005/testdash/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file. Durations
// go through timex.Duration so both "24h" and integer nanoseconds are accepted.
// Absent keys leave the corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrHTTP            string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	PasswordMinLength           *int            `json:"password_min_length"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	CORSOrigin                  string          `json:"cors_origin"`
}

// parseJson overlays values from the file named by -c / -config, if any.
// An unreadable file or invalid JSON panics: a config file the operator asked
// for but that cannot be used is a startup error.
func parseJson(config *Config) {
	path := flagx.ConfigFileFromArgs(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.applyTo(config)
}

func (c *JsonConfig) applyTo(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.CORSOrigin, c.CORSOrigin)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.PasswordMinLength != nil {
		config.PasswordMinLength = *c.PasswordMinLength
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
