package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/psykit/psyk/pkg/psyq"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "none", config.Render.CodeFormat)
	assert.False(t, config.Render.Recursive)
	assert.False(t, config.Render.BritishSpelling)
	assert.Equal(t, "./psyk-index", config.Index.Path)
	assert.Equal(t, "127.0.0.1", config.Serve.Bind)
	assert.Equal(t, 8080, config.Serve.Port)
	assert.Equal(t, ".", config.Serve.LibraryDir)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestRenderOptions(t *testing.T) {
	t.Run("defaults map to none", func(t *testing.T) {
		opts := DefaultConfig().RenderOptions()
		assert.Equal(t, psyq.CodeFormatNone, opts.CodeFormat)
		assert.False(t, opts.Recursive)
	})

	t.Run("hex", func(t *testing.T) {
		config := DefaultConfig()
		config.Render.CodeFormat = "hex"
		assert.Equal(t, psyq.CodeFormatHex, config.RenderOptions().CodeFormat)
	})

	t.Run("disassembly", func(t *testing.T) {
		config := DefaultConfig()
		config.Render.CodeFormat = "disassembly"
		config.Render.Recursive = true
		config.Render.BritishSpelling = true

		opts := config.RenderOptions()
		assert.Equal(t, psyq.CodeFormatDisassembly, opts.CodeFormat)
		assert.True(t, opts.Recursive)
		assert.True(t, opts.BritishSpelling)
	})

	t.Run("unknown format falls back to none", func(t *testing.T) {
		config := DefaultConfig()
		config.Render.CodeFormat = "octal"
		assert.Equal(t, psyq.CodeFormatNone, config.RenderOptions().CodeFormat)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "psyk_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		expectedConfig := &Config{
			Render: Render{
				CodeFormat:      "hex",
				Recursive:       true,
				BritishSpelling: true,
			},
			Index: Index{
				Path: "/var/lib/psyk/index",
			},
			Serve: Serve{
				Bind:       "0.0.0.0",
				Port:       9000,
				LibraryDir: "/opt/psyq/lib",
			},
			Logging: Logging{
				Level: "debug",
			},
		}

		err = SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "psyk_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "invalid.yaml")
		err = os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "psyk_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	config := DefaultConfig()

	err = SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "psyk")
	assert.Contains(t, path, "config.yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "psyk_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err = os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLMarshalling(t *testing.T) {
	config := &Config{
		Render: Render{
			CodeFormat: "disassembly",
			Recursive:  true,
		},
		Index: Index{
			Path: "/test/index",
		},
		Serve: Serve{
			Bind:       "localhost",
			Port:       9999,
			LibraryDir: "/test/lib",
		},
		Logging: Logging{
			Level: "warn",
		},
	}

	data, err := yaml.Marshal(config)
	require.NoError(t, err)

	var unmarshalled Config
	err = yaml.Unmarshal(data, &unmarshalled)
	require.NoError(t, err)

	assert.Equal(t, config, &unmarshalled)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	config := DefaultConfig()

	// Try to save to a directory that can't be created
	invalidPath := "/invalid/path/that/cannot/be/created/config.yaml"

	err := SaveConfig(config, invalidPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}
