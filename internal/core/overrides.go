package core

import "strconv"

// OverrideInt replaces *dst with cfg[key] when it parses and is at least min.
func OverrideInt(cfg map[string]string, key string, min int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

// OverrideFloat replaces *dst with cfg[key] when it parses and is at least min.
func OverrideFloat(cfg map[string]string, key string, min float64, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min {
		*dst = parsed
	}
}
