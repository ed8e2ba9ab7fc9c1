package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the converter settings that can come from a YAML file.
// Flags override whatever the file provides.
type Config struct {
	Quality          int    `yaml:"quality"`
	Prefix           string `yaml:"prefix"`
	MaxWidth         int    `yaml:"width"`
	MaxHeight        int    `yaml:"height"`
	OutputDir        string `yaml:"output_dir"`
	Watermark        string `yaml:"watermark"`
	Transparency     int    `yaml:"transparency"`
	Text             string `yaml:"text"`
	FontPath         string `yaml:"font_path"`
	FontSize         int    `yaml:"font_size"`
	FontColor        string `yaml:"font_color"`
	TextTransparency int    `yaml:"text_transparency"`
	Sharpen          bool   `yaml:"sharpen"`
	KeepMetadata     bool   `yaml:"keep_metadata"`
}

// Default returns the compiled-in defaults.
func Default() Config {
	return Config{
		Quality:          85,
		MaxWidth:         1024,
		MaxHeight:        1024,
		OutputDir:        "./webp",
		Transparency:     100,
		FontSize:         36,
		FontColor:        "#FFFFFF",
		TextTransparency: 100,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges after flags have been applied.
func (c Config) Validate() error {
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("quality must be 0-100, got %d", c.Quality)
	}
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.MaxWidth, c.MaxHeight)
	}
	if c.Transparency < 0 || c.Transparency > 255 {
		return fmt.Errorf("transparency must be 0-255, got %d", c.Transparency)
	}
	if c.TextTransparency < 0 || c.TextTransparency > 255 {
		return fmt.Errorf("text-transparency must be 0-255, got %d", c.TextTransparency)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font-size must be positive, got %d", c.FontSize)
	}
	return nil
}
