package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/testdash/internal/flagx"
	"github.com/dmitrijs2005/testdash/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI configuration. Omitted fields
// keep their current values.
type JsonConfig struct {
	ServerURL      string          `json:"server_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

func (jc *JsonConfig) applyTo(cfg *Config) {
	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}

// parseJson overlays cfg with the file named by -c/-config. Read and decode
// errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFromArgs(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.applyTo(cfg)
}
