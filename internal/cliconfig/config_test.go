package cliconfig

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/hdrs/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Method != "get" {
		t.Errorf("Method = %v, want get", cfg.Method)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantErr   bool
		wantUsage bool
	}{
		{
			name:   "valid minimal config",
			config: Config{Method: "get", URL: "http://localhost:8080"},
		},
		{
			name:   "valid post with timeout",
			config: Config{Method: "post", URL: "http://localhost:8080", Timeout: time.Second, LogLevel: "debug"},
		},
		{
			name:      "invalid method",
			config:    Config{Method: "put", URL: "http://localhost:8080"},
			wantErr:   true,
			wantUsage: true,
		},
		{
			name:      "missing url",
			config:    Config{Method: "get"},
			wantErr:   true,
			wantUsage: true,
		},
		{
			name:    "negative timeout",
			config:  Config{Method: "get", URL: "http://localhost", Timeout: -time.Second},
			wantErr: true,
		},
		{
			name:   "valid proxy",
			config: Config{Method: "get", URL: "http://localhost", Proxy: "http://proxy.local:3128"},
		},
		{
			name:    "unparseable proxy",
			config:  Config{Method: "get", URL: "http://localhost", Proxy: "://bad"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			config:  Config{Method: "get", URL: "http://localhost", LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && domain.IsUsage(err) != tt.wantUsage {
				t.Errorf("IsUsage(%v) = %v, want %v", err, domain.IsUsage(err), tt.wantUsage)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := Config{}
	lvl, err := cfg.Level()
	if err != nil || lvl != zerolog.WarnLevel {
		t.Errorf("Level() = %v, %v; want warn, nil", lvl, err)
	}

	cfg.LogLevel = "DEBUG"
	lvl, err = cfg.Level()
	if err != nil || lvl != zerolog.DebugLevel {
		t.Errorf("Level() = %v, %v; want debug, nil", lvl, err)
	}
}

func TestConfig_Invocation(t *testing.T) {
	cfg := Config{Method: "post", URL: "http://example.com"}

	first, err := cfg.Invocation()
	if err != nil {
		t.Fatalf("Invocation() error = %v", err)
	}
	second, err := cfg.Invocation()
	if err != nil {
		t.Fatalf("Invocation() error = %v", err)
	}
	if first != second {
		t.Errorf("Invocation() not stable: %v vs %v", first, second)
	}
	want := domain.Invocation{Method: domain.MethodPost, URL: "http://example.com"}
	if first != want {
		t.Errorf("Invocation() = %v, want %v", first, want)
	}

	cfg.Method = "patch"
	if _, err := cfg.Invocation(); !domain.IsUsage(err) {
		t.Errorf("Invocation() error = %v, want usage error", err)
	}
}

func TestMethodValue(t *testing.T) {
	method := "get"
	v := NewMethodValue(&method)

	if err := v.Set("post"); err != nil {
		t.Fatalf("Set(post) error = %v", err)
	}
	if method != "post" || v.String() != "post" {
		t.Errorf("method = %v, want post", method)
	}
	if err := v.Set("head"); err == nil {
		t.Error("Set(head) expected error")
	}
	if method != "post" {
		t.Errorf("method changed on rejected Set: %v", method)
	}
	if v.Type() != "get|post" {
		t.Errorf("Type() = %v, want get|post", v.Type())
	}
}
