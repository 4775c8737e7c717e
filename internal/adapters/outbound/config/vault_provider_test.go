package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeVault(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/v1/secret/data/smarttasks" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"data":{"OPENAI_API_KEY":"sk-test","DB_PORT":5432},"metadata":{"version":1}}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVaultProvider_Get(t *testing.T) {
	tests := map[string]struct {
		key       string
		want      string
		expectErr bool
	}{
		"string-value": {
			key:  "OPENAI_API_KEY",
			want: "sk-test",
		},
		"missing-key": {
			key:       "JWT_SECRET",
			expectErr: true,
		},
		"non-string-value": {
			key:       "DB_PORT",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			srv := newFakeVault(t, &calls)

			vp, err := NewVaultProvider(srv.URL, "root", "secret", "smarttasks", time.Minute)
			require.NoError(t, err)

			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVaultProvider_Get_CachesSecret(t *testing.T) {
	var calls atomic.Int32
	srv := newFakeVault(t, &calls)

	vp, err := NewVaultProvider(srv.URL, "root", "secret", "smarttasks", time.Minute)
	require.NoError(t, err)

	for range 3 {
		_, err := vp.Get(context.Background(), "OPENAI_API_KEY")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, path string
	}{
		"missing-server": {token: "t", mount: "m", path: "p"},
		"missing-token":  {server: "http://vault", mount: "m", path: "p"},
		"missing-mount":  {server: "http://vault", token: "t", path: "p"},
		"missing-path":   {server: "http://vault", token: "t", mount: "m"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.path, time.Minute)
			assert.Error(t, err)
		})
	}
}

func TestInitVaultProvider_Disabled(t *testing.T) {
	ctx, err := InitVaultProvider{Server: "-"}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}

func TestInitVaultProvider_MissingToken(t *testing.T) {
	_, err := InitVaultProvider{
		Server:     "http://127.0.0.1:8200",
		Token:      "-",
		MountPath:  "secret",
		SecretPath: "smarttasks",
	}.Initialize(context.Background())
	assert.ErrorContains(t, err, "token is required")
}
