package config

// defaults is the lowest configuration layer. Each section mirrors its
// struct in config.go; base.yaml, the profile file and APP_* variables
// override it.
func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":          "0.0.0.0",
			"port":          8080,
			"read_timeout":  "5s",
			"write_timeout": "10s",
			"idle_timeout":  "120s",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"store": map[string]any{
			"backend":   BackendMemory,
			"seed_file": "",
			"postgres": map[string]any{
				"dsn":       "",
				"max_conns": 4,
			},
			"mongo": map[string]any{
				"uri":        "",
				"database":   "dev",
				"collection": "todos",
				"timeout":    "10s",
			},
		},
		"client": map[string]any{
			"base_url": "http://localhost:4567",
			"timeout":  "30s",
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "10s",
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 1,
			},
			"rate_limit": map[string]any{
				"requests_per_second": 0,
				"burst_size":          0,
			},
		},
		"health": map[string]any{
			"check_timeout": "2s",
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": "todos-service",
		},
	}
}
