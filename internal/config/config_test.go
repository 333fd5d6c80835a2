package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
gateway:
  url: wss://gateway.example.com:5000/v1/api/ws
  ping_timeout: 90s
logging:
  level: debug
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Gateway.URL != "wss://gateway.example.com:5000/v1/api/ws" {
		t.Errorf("Gateway.URL = %q, want %q", cfg.Gateway.URL, "wss://gateway.example.com:5000/v1/api/ws")
	}
	if cfg.Gateway.PingTimeout != 90*time.Second {
		t.Errorf("Gateway.PingTimeout = %v, want 90s", cfg.Gateway.PingTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_GATEWAY_HOST", "gw.internal")

	yaml := `
gateway:
  url: wss://${TEST_GATEWAY_HOST}:5000/v1/api/ws
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Gateway.URL != "wss://gw.internal:5000/v1/api/ws" {
		t.Errorf("Gateway.URL = %q, want %q", cfg.Gateway.URL, "wss://gw.internal:5000/v1/api/ws")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "gateway: {}\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Gateway.URL != DefaultGatewayURL {
		t.Errorf("Gateway.URL = %q, want default %q", cfg.Gateway.URL, DefaultGatewayURL)
	}
	if cfg.Gateway.ConnectTimeout != DefaultConnectTimeout {
		t.Errorf("Gateway.ConnectTimeout = %v, want default %v", cfg.Gateway.ConnectTimeout, DefaultConnectTimeout)
	}
	if cfg.Gateway.PingTimeout != DefaultPingTimeout {
		t.Errorf("Gateway.PingTimeout = %v, want default %v", cfg.Gateway.PingTimeout, DefaultPingTimeout)
	}
	if cfg.Gateway.BufferSize != DefaultBufferSize {
		t.Errorf("Gateway.BufferSize = %d, want default %d", cfg.Gateway.BufferSize, DefaultBufferSize)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, DefaultLogLevel)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Gateway: GatewayConfig{
			URL:            "wss://localhost:5000/v1/api/ws",
			ConnectTimeout: 10 * time.Second,
			PingTimeout:    60 * time.Second,
			WriteTimeout:   5 * time.Second,
			BufferSize:     16,
		},
		Logging: LoggingConfig{Level: "info"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing gateway url",
			mutate:  func(c *Config) { c.Gateway.URL = "" },
			wantErr: "gateway.url is required",
		},
		{
			name:    "non-websocket url",
			mutate:  func(c *Config) { c.Gateway.URL = "https://localhost:5000" },
			wantErr: `gateway.url must be a ws:// or wss:// URL, got "https://localhost:5000"`,
		},
		{
			name:    "zero buffer size",
			mutate:  func(c *Config) { c.Gateway.BufferSize = 0 },
			wantErr: "gateway.buffer_size must be >= 1",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: `logging.level must be one of debug, info, warn, error; got "verbose"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
