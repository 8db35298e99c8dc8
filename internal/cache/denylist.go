package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenDenylist guarda os jti de tokens revogados no logout até a
// expiração natural de cada um. Fonte externa indisponível conta como
// token válido: logout é conveniência, não barreira de segurança extra.
type TokenDenylist struct {
	rdb *redis.Client
}

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb}
}

func (d *TokenDenylist) key(jti string) string {
	return "revoked_token:" + jti
}

func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, d.key(jti), "1", ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) bool {
	n, err := d.rdb.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
