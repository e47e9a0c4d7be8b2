package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"CONFIG_FILE", "ADDR", "STORE_BACKEND", "DATABASE_URL", "IDENTITY_MODE",
		"IDENTITY_HEADER", "JWT_SECRET", "JWT_TTL_MINUTES", "SEED_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func Test_Load_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "127.0.0.1:8080", cfg.Addr)
}

func Test_Load_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: "0.0.0.0:9090"
identity_mode: jwt
jwt_ttl_minutes: 5
`), 0o600))
	t.Setenv("ADDR", "127.0.0.1:7070")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7070", cfg.Addr)
	require.Equal(t, IdentityJWT, cfg.IdentityMode)
	require.Equal(t, 5, cfg.JWTTTLMinutes)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, BackendMemory, cfg.StoreBackend)
}

func Test_Load_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "should reject unknown backend", env: map[string]string{"STORE_BACKEND": "redis"}},
		{name: "should reject unknown identity mode", env: map[string]string{"IDENTITY_MODE": "cookie"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.True(t, errors.IsNotValid(err), "unexpected error: %v", err)
		})
	}
}

func Test_Load_EmptySecretInHeaderMode(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identity_mode: header\njwt_secret: \"\"\n"), 0o600))

	_, err := Load(path)
	require.True(t, errors.IsNotValid(err), "unexpected error: %v", err)
}

func Test_Load_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
