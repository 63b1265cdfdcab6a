package config

import "testing"

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %q, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.Redis.Address != "localhost:6379" {
		t.Errorf("Redis.Address = %q, want localhost:6379", cfg.Cache.Redis.Address)
	}
	if cfg.Upstream.TimeoutSeconds != 10 {
		t.Errorf("Upstream.TimeoutSeconds = %d, want 10", cfg.Upstream.TimeoutSeconds)
	}
}

func TestLoadFromEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9001" {
		t.Errorf("Port = %q, want 9001", cfg.Server.Port)
	}
	if cfg.Cache.Type != "redis" {
		t.Errorf("Cache.Type = %q, want redis", cfg.Cache.Type)
	}
	if cfg.Cache.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d, want 3", cfg.Cache.Redis.DB)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	cfg, _ := LoadFromEnv()

	if cfg.Upstream.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want default 10", cfg.Upstream.TimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := LoadFromEnv()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"negative rate limit", func(c *Config) { c.Server.RateLimitPerSecond = -1 }, true},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "tape" }, true},
		{"redis without address", func(c *Config) { c.Cache.Type = "redis"; c.Cache.Redis.Address = "" }, true},
		{"redis with address", func(c *Config) { c.Cache.Type = "redis" }, false},
		{"zero upstream timeout", func(c *Config) { c.Upstream.TimeoutSeconds = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
