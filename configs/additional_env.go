package configs

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment additional in this service
type Environment struct {
	// NearbyRadiusLadderKm search radii in km tried in order until a nearby
	// lookup without explicit radius finds a church
	NearbyRadiusLadderKm []float64
	// NearbyMaxResults cap on churches returned by one nearby lookup
	NearbyMaxResults int64

	RoutingBaseURL       string
	RoutingAPIKey        string
	RoutingProfiles      []string
	RoutingTimeout       time.Duration
	RoutingRetryCount    int
	RoutingRetryInterval time.Duration
}

// Defaults applied when the additional env is absent. Exported because the
// nearby lookup falls back to them when running before env load, e.g. in tests.
var (
	DefaultNearbyRadiusLadderKm       = []float64{5, 10, 15}
	DefaultRoutingProfiles            = []string{"driving-car", "foot-walking"}
	DefaultNearbyMaxResults     int64 = 15
)

var env Environment

// GetEnv get global additional environment
func GetEnv() Environment {
	return env
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	parsed, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloatList(key string, fallback []float64) []float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var result []float64
	for _, part := range strings.Split(raw, ",") {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fallback
		}
		result = append(result, val)
	}
	return result
}

func envStringList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func loadAdditionalEnv() {
	env.NearbyRadiusLadderKm = envFloatList("NEARBY_RADIUS_LADDER_KM", DefaultNearbyRadiusLadderKm)
	env.NearbyMaxResults = envInt64("NEARBY_MAX_RESULTS", DefaultNearbyMaxResults)

	env.RoutingBaseURL = envOrDefault("OPENROUTESERVICE_BASE_URL", "https://api.openrouteservice.org")
	env.RoutingAPIKey = os.Getenv("OPENROUTESERVICE_API_KEY")
	env.RoutingProfiles = envStringList("ROUTING_PROFILES", DefaultRoutingProfiles)
	env.RoutingTimeout = envDuration("ROUTING_TIMEOUT", 10*time.Second)
	env.RoutingRetryCount = int(envInt64("ROUTING_RETRY_COUNT", 2))
	env.RoutingRetryInterval = envDuration("ROUTING_RETRY_INTERVAL", 500*time.Millisecond)
}
