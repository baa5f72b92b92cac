package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// New reads the process environment into a flat key/value map.
func New() map[string]string {
	k := koanf.New("::")
	// The delimiter never appears in env keys, so every variable stays a top-level key.
	if err := k.Load(env.Provider("", "::", func(s string) string { return s }), nil); err != nil {
		return map[string]string{}
	}

	all := k.All()
	envAsMap := make(map[string]string, len(all))
	for key, value := range all {
		if key == "" {
			continue
		}
		envAsMap[key] = fmt.Sprint(value)
	}
	return envAsMap
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetBool accepts the usual strconv spellings ("1", "true", "FALSE"...).
func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asBool
}

// GetSeconds reads an integer number of seconds as a duration.
func GetSeconds(config map[string]string, key string, defaultSeconds int) time.Duration {
	return time.Duration(GetInt(config, key, defaultSeconds)) * time.Second
}
