package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields earshot needs to reach the inference engine
// and prefill the probe panels.
type Config struct {
	APIBase          string
	Model            string
	APIKeyEnv        string
	ProbeEndpoint    string
	HoneypotEndpoint string
}

const (
	defaultConfigPath = "~/.config/earshot/config.toml"
	defaultAPIBase    = "https://generativelanguage.googleapis.com"
	defaultModel      = "gemini-2.5-flash"
	defaultAPIKeyEnv  = "GEMINI_API_KEY"
)

// Load locates and parses the earshot config, falling back to defaults
// when the file or individual fields are missing. The API key itself is
// never read from the file; only the name of the env var that holds it.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBase: defaultAPIBase, Model: defaultModel, APIKeyEnv: defaultAPIKeyEnv}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase          string `toml:"api_base"`
		Model            string `toml:"model"`
		APIKeyEnv        string `toml:"api_key_env"`
		ProbeEndpoint    string `toml:"probe_endpoint"`
		HoneypotEndpoint string `toml:"honeypot_endpoint"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(raw.Model); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(raw.APIKeyEnv); v != "" {
		cfg.APIKeyEnv = v
	}
	cfg.ProbeEndpoint = strings.TrimSpace(raw.ProbeEndpoint)
	cfg.HoneypotEndpoint = strings.TrimSpace(raw.HoneypotEndpoint)

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
