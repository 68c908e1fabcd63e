package config

// LocalConfig es la configuración local del dashboard que no viene del
// upstream: ventana de feedback de entrevistas y feature flags.
type LocalConfig struct {
	FeedbackWindowMinutes int
	FeatureFlags          []string
}

func loadLocalConfig() LocalConfig {
	return LocalConfig{
		FeedbackWindowMinutes: getEnvInt("FEEDBACK_WINDOW_MINUTES", 30),
		FeatureFlags:          getEnvStringSlice("FEATURE_FLAGS", nil),
	}
}

// HasFlag verifica si un feature flag está habilitado
func (lc LocalConfig) HasFlag(name string) bool {
	for _, f := range lc.FeatureFlags {
		if f == name {
			return true
		}
	}
	return false
}
