package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":5000", cfg.EndpointAddr)
	require.NotEmpty(t, cfg.DatabaseDSN)
	require.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	require.Positive(t, cfg.LoginRatePerMinute)
	require.Positive(t, cfg.LoginBurst)
}
