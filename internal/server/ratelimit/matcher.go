package ratelimit

import (
	"strings"
)

// unlimited is returned for endpoints that are never rate limited.
var unlimited = EndpointConfig{}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns nil if no configuration applies, in which case the default limit is used.
// Exact paths win; a configured path ending in "/" matches any longer path under it.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		u := unlimited
		return &u
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
