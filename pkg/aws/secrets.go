package aws

import (
	"context"
	"fmt"
	"strings"
	"sync"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// DefaultSecretPrefix namespaces every secret this service reads.
const DefaultSecretPrefix = "bakery"

type secretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsClient resolves config keys such as DATABASE_URL to secrets named
// "<prefix>/<key>". Values are memoized for the life of the process.
type SecretsClient struct {
	api    secretsAPI
	prefix string

	mu    sync.RWMutex
	cache map[string]string
}

func NewSecretsClient(cfg sdkaws.Config, prefix string) *SecretsClient {
	return newSecretsClient(secretsmanager.NewFromConfig(cfg), prefix)
}

func newSecretsClient(api secretsAPI, prefix string) *SecretsClient {
	if prefix == "" {
		prefix = DefaultSecretPrefix
	}
	return &SecretsClient{
		api:    api,
		prefix: strings.TrimSuffix(prefix, "/"),
		cache:  make(map[string]string),
	}
}

// SecretName maps a config key to its Secrets Manager id.
func (s *SecretsClient) SecretName(key string) string {
	return s.prefix + "/" + key
}

// GetSecret returns the string value stored for key. Empty values are errors
// so callers never override config with "".
func (s *SecretsClient) GetSecret(ctx context.Context, key string) (string, error) {
	name := s.SecretName(key)

	s.mu.RLock()
	v, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: &name})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", name)
	}

	s.mu.Lock()
	s.cache[name] = *out.SecretString
	s.mu.Unlock()
	return *out.SecretString, nil
}
