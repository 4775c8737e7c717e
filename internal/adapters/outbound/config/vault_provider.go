package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider reads configuration values from a KV v2 secret in HashiCorp Vault.
// The secret is read once and cached for the configured TTL.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	ttl        time.Duration

	mu       sync.Mutex
	data     map[string]any
	loadedAt time.Time
}

// NewVaultProvider creates a new VaultProvider.
//
// The mountPath is the mount point of the KV secrets engine (e.g., "secret")
// and the secretPath is the path of the secret within the mount (e.g., "smarttasks").
func NewVaultProvider(server, token, mountPath, secretPath string, ttl time.Duration) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		ttl:        ttl,
	}, nil
}

// Get returns the value stored under key in the configured secret.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secret(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}
	return s, nil
}

func (vp *VaultProvider) secret(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.data != nil && time.Since(vp.loadedAt) < vp.ttl {
		return vp.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.data = secret.Data
	vp.loadedAt = time.Now()
	return vp.data, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider layers Vault under the environment as the global config provider.
// Setting VAULT_ADDR to "-" keeps the environment as the only source.
// A VAULT_TOKEN of "-" means no token.
type InitVaultProvider struct {
	Server     string        `config:"VAULT_ADDR" default:"-"`
	Token      string        `config:"VAULT_TOKEN" default:"-"`
	MountPath  string        `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string        `config:"VAULT_SECRET_PATH" default:"smarttasks"`
	CacheTTL   time.Duration `config:"VAULT_CACHE_TTL" default:"1m"`
}

// Initialize builds the provider and installs the composite provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		return ctx, nil
	}

	token := ivp.Token
	if token == "-" {
		token = ""
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, token, ivp.MountPath, ivp.SecretPath, ivp.CacheTTL)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	return ctx, nil
}
