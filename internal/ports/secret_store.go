package ports

import "context"

// SecretStore keeps access key material. Keys are slash separated paths such
// as "mainnet/alice.near.json".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
