package repl

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// config holds the optional REPL settings loaded from ~/.goloxrc.yaml.
// Absence of the file is not an error: defaultConfig supplies every value.
type config struct {
	Banner      string `yaml:"banner"`
	Prompt      string `yaml:"prompt"`
	EchoResults *bool  `yaml:"echo_results"`
	Color       *bool  `yaml:"color"`
}

func defaultConfig() config {
	enabled := true
	return config{
		Banner:      "golox — Lox interpreter. Ctrl-D to exit.",
		Prompt:      prompt,
		EchoResults: &enabled,
		Color:       &enabled,
	}
}

// loadConfig reads ~/.goloxrc.yaml and overlays it on the defaults. A
// missing file, an unreadable home directory, or empty content is not an
// error — it just leaves the defaults untouched.
func loadConfig() config {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(home, ".goloxrc.yaml"))
	if err != nil {
		return cfg
	}

	var override config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg
	}

	if override.Banner != "" {
		cfg.Banner = override.Banner
	}
	if override.Prompt != "" {
		cfg.Prompt = override.Prompt
	}
	if override.EchoResults != nil {
		cfg.EchoResults = override.EchoResults
	}
	if override.Color != nil {
		cfg.Color = override.Color
	}
	return cfg
}
