// Package config loads runtime configuration for the remindme CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      HTTP request timeout (seconds)
//	-d string   path to the local session database
//	-p int      reminder search page size
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com",
//	  "http_timeout": "10s",
//	  "session_db_path": "remindme.db",
//	  "page_size": 5
//	}
package config
