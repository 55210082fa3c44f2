package config

const (
	// backendDomain is the domain every backend base URL must live under.
	backendDomain = "supabase.co"
	// publishableKeyPrefix tags API keys that are safe to embed client-side.
	publishableKeyPrefix = "sb_publishable_"
)

// Backend holds the connection parameters for one Supabase project.
type Backend struct {
	// URL is the project base endpoint.
	URL string `yaml:"url" validate:"required,url,contains=supabase.co"`
	// PublishableKey is the client-side API key for the project.
	PublishableKey string `yaml:"publishableKey" validate:"required,startswith=sb_publishable_"`
}

// defaultBackends maps every supported environment to its Supabase project.
// Overrides from files or COACH_* variables are layered on top at load time.
var defaultBackends = map[Environment]Backend{
	Development: {
		URL:            "https://kqwzdrhcvmeujtpx.supabase.co",
		PublishableKey: "sb_publishable_J6tR3m9QxbZfWn0kqo2vAw_5cdEYhVg",
	},
	Staging: {
		URL:            "https://ynfkxbotqajmwvph.supabase.co",
		PublishableKey: "sb_publishable_j0uLp8sNcGdXeQa4vkr1Bw_7mtWZhFy",
	},
	Production: {
		URL:            "https://tmgxqvulwrzbekdy.supabase.co",
		PublishableKey: "sb_publishable_Kd2fH7wMubSYtRn5xel9Cw_3pqAVjNz",
	},
}

// DefaultBackend returns the built-in backend for the given environment.
func DefaultBackend(environment Environment) (Backend, bool) {
	backend, ok := defaultBackends[environment]
	return backend, ok
}
