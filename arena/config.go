// Package arena drives the third-party c4arena web game through a browser
// session. It is purely a caller of the engine: no game logic lives here.
package arena

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config locates the game page and its controls. The locators live in a
// YAML file because the third-party page changes without notice and a
// rebuild should not be needed to follow it.
type Config struct {
	URL              string `yaml:"url"`
	GameFrame        string `yaml:"game_frame"`        // selector of the game iframe
	PlayAIButton     string `yaml:"play_ai_button"`    // selector inside the frame
	DifficultyButton string `yaml:"difficulty_button"` // selector inside the frame
	ScreenshotPath   string `yaml:"screenshot_path"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	fields := map[string]string{
		"url":               c.URL,
		"game_frame":        c.GameFrame,
		"play_ai_button":    c.PlayAIButton,
		"difficulty_button": c.DifficultyButton,
		"screenshot_path":   c.ScreenshotPath,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("arena config: missing %s", name)
		}
	}
	return nil
}
