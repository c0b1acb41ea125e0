package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "localhost:8080", cfg.ServerAddress.String())
	assert.Equal(t, "http://localhost:8080/", cfg.BaseURL.String())
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.FileStoragePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromArgs_Flags(t *testing.T) {
	// Arrange
	args := []string{
		"-a", "0.0.0.0:9090",
		"-b", "https://rewards.example.com",
		"-f", "/tmp/rewards.json",
		"-r", "5",
		"-t", "stdout",
	}

	// Act
	cfg, err := LoadFromArgs(args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, NetworkAddress{Host: "0.0.0.0", Port: 9090}, cfg.ServerAddress)
	assert.Equal(t, URLPrefix("https://rewards.example.com/"), cfg.BaseURL)
	assert.Equal(t, "/tmp/rewards.json", cfg.FileStoragePath)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, "stdout", cfg.TraceOutput)
}

func TestLoadFromArgs_EnvOverridesFlags(t *testing.T) {
	// Arrange
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")
	t.Setenv("BASE_URL", "https://env.example.com/")
	t.Setenv("RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("DATABASE_DSN", "postgres://localhost/rewards")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	// Act
	cfg, err := LoadFromArgs([]string{"-a", "0.0.0.0:9090", "-r", "2"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.ServerAddress.String())
	assert.Equal(t, "https://env.example.com/", cfg.BaseURL.String())
	assert.Equal(t, 7, cfg.Retry.MaxAttempts)
	assert.Equal(t, "postgres://localhost/rewards", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Bad address", args: []string{"-a", "localhost"}},
		{name: "Bad port", args: []string{"-a", "localhost:port"}},
		{name: "Bad base URL", args: []string{"-b", "ftp://example.com"}},
		{name: "Zero attempts", args: []string{"-r", "0"}},
		{name: "Unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromArgs(tt.args)

			assert.Error(t, err)
		})
	}
}

func TestNetworkAddress_Set(t *testing.T) {
	var addr NetworkAddress

	require.NoError(t, addr.Set(":8081"))
	assert.Equal(t, "", addr.Host)
	assert.Equal(t, 8081, addr.Port)

	assert.Error(t, addr.Set("localhost:70000"))
}
