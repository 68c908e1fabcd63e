package config

import "time"

// UpstreamConfig configura la conexión al API HR remoto (/api/v1)
type UpstreamConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

func loadUpstreamConfig() UpstreamConfig {
	return UpstreamConfig{
		BaseURL:   getEnv("UPSTREAM_BASE_URL", "http://localhost:9000/api/v1"),
		Timeout:   getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		UserAgent: getEnv("UPSTREAM_USER_AGENT", "talentgate/1.0"),
	}
}
