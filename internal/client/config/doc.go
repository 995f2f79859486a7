// Package config loads runtime configuration for the testdash CLI.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   base URL of the testdash API
//	-t int      request timeout (seconds)
//
// JSON durations go through timex.Duration, so "10s" and integer
// nanoseconds are both accepted:
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "request_timeout": "10s"
//	}
package config
