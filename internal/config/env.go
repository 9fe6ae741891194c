package config

import "os"

// Env carries every external endpoint and credential the app talks to.
// Secrets never go through Fyne preferences; they come from the
// environment only.
type Env struct {
	OpenAIAPIKey string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDatabase string

	GoogleClientID     string
	GoogleClientSecret string
}

// FromEnv reads the environment with sensible local defaults
func FromEnv() Env {
	return Env{
		OpenAIAPIKey: getParam("OPENAI_API_KEY", ""),

		PostgresHost:     getParam("POSTGRES_HOST", "localhost"),
		PostgresPort:     getParam("POSTGRES_PORT", "5432"),
		PostgresUser:     getParam("POSTGRES_USER", "media"),
		PostgresPassword: getParam("POSTGRES_PASSWORD", "media"),
		PostgresDatabase: getParam("POSTGRES_DB", "media"),

		GoogleClientID:     getParam("GOOGLE_OAUTH_CLIENT_ID", ""),
		GoogleClientSecret: getParam("GOOGLE_OAUTH_CLIENT_SECRET", ""),
	}
}

// HistoryEnabled reports whether a history database was configured at all.
// An explicitly empty POSTGRES_HOST disables the feature.
func (e Env) HistoryEnabled() bool {
	return e.PostgresHost != ""
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
