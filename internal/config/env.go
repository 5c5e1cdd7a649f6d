package config

import (
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "POPGROWTH"

// ApplyEnv overrides c with POPGROWTH_* environment variables.
func (c *Config) ApplyEnv() {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"addr", "log_level", "theme", "allowed_origins"} {
		_ = v.BindEnv(key)
	}

	if v.IsSet("addr") {
		c.Server.Addr = v.GetString("addr")
	}
	if v.IsSet("log_level") {
		c.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("theme") {
		c.Theme = v.GetString("theme")
	}
	if v.IsSet("allowed_origins") {
		origins := strings.Split(v.GetString("allowed_origins"), ",")
		var allowed []string
		for _, o := range origins {
			if o = strings.TrimSpace(o); o != "" {
				allowed = append(allowed, o)
			}
		}
		c.Server.AllowedOrigins = allowed
	}
}
