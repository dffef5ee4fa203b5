package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Remove(tmpFile.Name()))
	})

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

func TestMustLoad_ValidConfig(t *testing.T) {
	// Создаем временный конфиг файл
	configContent := `
env: test
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 60s
odata_api:
  base_url: "https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0"
  timeoutapi: 15s
  default_limit: 1000
  max_limit: 5000
`
	path := writeTempConfig(t, configContent)

	// Устанавливаем переменную окружения
	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		require.NoError(t, os.Setenv("CONFIG_PATH", originalPath))
	}()
	require.NoError(t, os.Setenv("CONFIG_PATH", path))

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.TimeoutAPI)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, 5000, cfg.MaxLimit)
}

func TestMustLoad_DefaultValues(t *testing.T) {
	// Минимальный конфиг: секция odata_api отсутствует, берутся значения по умолчанию
	configContent := `
env: test
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 60s
`
	path := writeTempConfig(t, configContent)

	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		require.NoError(t, os.Setenv("CONFIG_PATH", originalPath))
	}()
	require.NoError(t, os.Setenv("CONFIG_PATH", path))

	cfg := MustLoad()

	assert.Equal(t, "https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.TimeoutAPI)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, 5000, cfg.MaxLimit)
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{
		Env: "local",
		HTTPServer: HTTPServer{
			AddressHTTP: ":8080",
			TimeoutHTTP: 30 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		ODataAPI: ODataAPI{
			BaseURL:      "https://example.org/OData/v4",
			TimeoutAPI:   15 * time.Second,
			DefaultLimit: 1000,
			MaxLimit:     5000,
		},
	}

	s := cfg.String()
	assert.Contains(t, s, "Env: local")
	assert.Contains(t, s, "Address: :8080")
	assert.Contains(t, s, "BaseURL: https://example.org/OData/v4")
	assert.Contains(t, s, "DefaultLimit: 1000")
}
