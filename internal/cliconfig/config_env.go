package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (HDRS_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("method", os.Getenv("HDRS_METHOD"), &cfg.Method)
	s.setString("user-agent", os.Getenv("HDRS_USER_AGENT"), &cfg.UserAgent)
	s.setString("proxy", os.Getenv("HDRS_PROXY"), &cfg.Proxy)
	s.setString("log-level", os.Getenv("HDRS_LOG_LEVEL"), &cfg.LogLevel)

	return s.setDuration("timeout", os.Getenv("HDRS_TIMEOUT"), &cfg.Timeout)
}
