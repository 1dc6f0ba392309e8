/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/psykit/psyk/pkg/psyq"
)

// Config represents the psyk configuration
type Config struct {
	Render  Render  `yaml:"render"`
	Index   Index   `yaml:"index"`
	Serve   Serve   `yaml:"serve"`
	Logging Logging `yaml:"logging"`
}

// Render contains listing output configuration
type Render struct {
	// CodeFormat is one of "none", "hex" or "disassembly"
	CodeFormat      string `yaml:"code_format"`
	Recursive       bool   `yaml:"recursive"`
	BritishSpelling bool   `yaml:"british_spelling"`
}

// Index contains symbol index configuration
type Index struct {
	Path string `yaml:"path"`
}

// Serve contains API server configuration
type Serve struct {
	Bind       string `yaml:"bind"`
	Port       int    `yaml:"port"`
	LibraryDir string `yaml:"library_dir"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: Render{
			CodeFormat: "none",
		},
		Index: Index{
			Path: "./psyk-index",
		},
		Serve: Serve{
			Bind:       "127.0.0.1",
			Port:       8080,
			LibraryDir: ".",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// RenderOptions converts the render section into the options the listing
// functions take. Unknown code_format values fall back to "none".
func (c *Config) RenderOptions() psyq.RenderOptions {
	opts := psyq.RenderOptions{
		Recursive:       c.Render.Recursive,
		BritishSpelling: c.Render.BritishSpelling,
	}
	switch c.Render.CodeFormat {
	case "hex":
		opts.CodeFormat = psyq.CodeFormatHex
	case "disassembly":
		opts.CodeFormat = psyq.CodeFormatDisassembly
	}
	return opts
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./psyk.yaml"
	}

	// For Linux/macOS, use ~/.config/psyk/config.yaml
	configDir := filepath.Join(homeDir, ".config", "psyk")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
