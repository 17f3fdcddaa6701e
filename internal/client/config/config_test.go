package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5000", cfg.ServerURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Empty(t, cfg.SessionFile)
}

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{"server_url":"https://api.example.com","request_timeout":"30s","session_file":"/tmp/s.json"}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))
	require.Equal(t, "https://api.example.com", jc.ServerURL)
	require.Equal(t, 30*time.Second, jc.RequestTimeout.Duration)
	require.Equal(t, "/tmp/s.json", jc.SessionFile)
}
