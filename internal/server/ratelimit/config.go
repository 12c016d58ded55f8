package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig sets the limit for one route.
type EndpointConfig struct {
	Path   string        // exact path, pattern with {name} segments, or prefix ending in "/"
	Method string        // HTTP method
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration // refill period
	Burst  int           // bucket capacity; defaults to Limit
}

// LoadConfig reads RATE_LIMIT_* variables from the process environment.
func LoadConfig() *Config {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom reads RATE_LIMIT_* variables through getenv.
func LoadConfigFrom(getenv func(string) string) *Config {
	env := envReader(getenv)
	if !env.bool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.int("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   env.duration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.duration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(env.int("RATE_LIMIT_GENERATE_LIMIT", 30)),
	}
}

// DefaultEndpointConfigs limits the routes that call the text generation
// service to generateLimit requests per hour and caps exports, which may
// start a browser.
func DefaultEndpointConfigs(generateLimit int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/resume/experience/{id}/generate", Method: "POST", Limit: generateLimit, Window: time.Hour, Burst: 5},
		{Path: "/resume/summary/generate", Method: "POST", Limit: generateLimit, Window: time.Hour, Burst: 5},
		{Path: "/analyze", Method: "POST", Limit: generateLimit, Window: time.Hour, Burst: 5},
		{Path: "/export", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

type envReader func(string) string

func (e envReader) int(key string, def int) int {
	if v, err := strconv.Atoi(e(key)); err == nil {
		return v
	}
	return def
}

func (e envReader) bool(key string, def bool) bool {
	if v, err := strconv.ParseBool(e(key)); err == nil {
		return v
	}
	return def
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(e(key)); err == nil {
		return v
	}
	return def
}

// parseIPList parses a comma-separated list of client addresses.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
