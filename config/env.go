package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SOCIALREC_"

// ApplyEnv overlays SOCIALREC_[KEY] variables read through getenv
// (os.Getenv in production). Empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	setString(getenv, &c.Training, "TRAINING")
	setString(getenv, &c.Testing, "TESTING")
	setString(getenv, &c.Output, "OUTPUT")
	setString(getenv, &c.MetricsFile, "METRICS_FILE")
	setString(getenv, &c.Log.Level, "LOG_LEVEL")
	setString(getenv, &c.Log.Format, "LOG_FORMAT")

	set, err := setInt(getenv, &c.MaxDepth, "MAX_DEPTH")
	if err != nil {
		return err
	}
	c.MaxDepthSet = c.MaxDepthSet || set

	_, err = setInt(getenv, &c.Workers, "WORKERS")

	return err
}

func setString(getenv func(string) string, dst *string, key string) {
	if v := strings.TrimSpace(getenv(EnvPrefix + key)); v != "" {
		*dst = v
	}
}

// setInt reports whether the variable was present.
func setInt(getenv func(string) string, dst *int, key string) (bool, error) {
	v := strings.TrimSpace(getenv(EnvPrefix + key))
	if v == "" {
		return false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, key, v, err)
	}
	*dst = n

	return true, nil
}
