// Package app wires the earshot console together: it loads configuration
// and preferences, resolves the engine API key from the environment or a
// dotenv file, builds the forensic and probe clients, and hands everything
// to the UI.
package app
