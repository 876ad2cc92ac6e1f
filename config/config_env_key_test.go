package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	// Keys as the YAML file spells them; env overrides must land on the same paths.
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":            "disable",
			"slowQueryThreshold": "200ms",
			"master":             map[string]any{"userName": "postgres"},
		},
		"cache": map[string]any{
			"keyPrefix": "logistics",
			"redis":     map[string]any{"addr": "localhost:6379"},
		},
		"http":       map[string]any{"requestsPerMinute": 30},
		"pagination": map[string]any{"maxPageSize": 100},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_SLOWQUERYTHRESHOLD": "postgres.slowQueryThreshold",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"CACHE_KEYPREFIX":             "cache.keyPrefix",
		"CACHE_REDIS_ADDR":            "cache.redis.addr",
		"HTTP_REQUESTSPERMINUTE":      "http.requestsPerMinute",
		"PAGINATION_MAXPAGESIZE":      "pagination.maxPageSize",
		"CACHE__PROVIDER":             "cache.provider",
		"SECRETKEY_ACCESS":            "secretkey.access",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
