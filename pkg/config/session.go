package config

import "time"

// SessionConfig configura el almacén de sesiones del gateway.
// "redis" para despliegues multi-instancia, "memory" para desarrollo.
type SessionConfig struct {
	StoreType       string
	TTL             time.Duration
	CleanupInterval time.Duration
}

func loadSessionConfig() SessionConfig {
	return SessionConfig{
		StoreType:       getEnv("SESSION_STORE", "memory"),
		TTL:             getEnvDuration("SESSION_TTL", 24*time.Hour),
		CleanupInterval: getEnvDuration("SESSION_CLEANUP_INTERVAL", 5*time.Minute),
	}
}
