// Package config handles loading and parsing the earshot configuration
// file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/earshot/config.toml
//  3. If the file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are empty, use defaults per field
//
// # TOML Format
//
//	api_base = "https://generativelanguage.googleapis.com"
//	model = "gemini-2.5-flash"
//	api_key_env = "GEMINI_API_KEY"
//	probe_endpoint = "https://api.example.com/v1/analyze"
//	honeypot_endpoint = "https://trap.example.com/collect"
//
// All fields are optional. Tilde expansion is applied to the config path.
// The inference API key is deliberately not a config field: api_key_env
// names the environment variable to read it from, so the secret stays out
// of files that get committed or copied around.
//
// Missing config files are NOT an error — earshot works out of the box
// against the default engine.
package config
