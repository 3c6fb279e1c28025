package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// confirmTTL is how long a delete confirmation stays valid. Letting it
// expire unconsumed is the "cancel" path: nothing else happens.
const confirmTTL = 2 * time.Minute

// DeleteConfirmer stores one-shot delete-confirmation tokens in Redis.
// Key format: confirm:<reservation_id>:<token>
type DeleteConfirmer struct {
	client *redis.Client
}

func NewDeleteConfirmer(client *redis.Client) *DeleteConfirmer {
	return &DeleteConfirmer{client: client}
}

// Issue creates a token bound to the given reservation.
func (d *DeleteConfirmer) Issue(ctx context.Context, reservationID int) (string, error) {
	token := uuid.NewString()
	if err := d.client.Set(ctx, d.key(reservationID, token), "1", confirmTTL).Err(); err != nil {
		return "", fmt.Errorf("confirm issue: %w", err)
	}
	return token, nil
}

// Consume validates and burns the token. Returns false for an unknown,
// expired or mismatched token; the token is gone either way only on success.
func (d *DeleteConfirmer) Consume(ctx context.Context, reservationID int, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	n, err := d.client.Del(ctx, d.key(reservationID, token)).Result()
	if err != nil {
		return false, fmt.Errorf("confirm consume: %w", err)
	}
	return n > 0, nil
}

func (d *DeleteConfirmer) key(reservationID int, token string) string {
	return fmt.Sprintf("confirm:%d:%s", reservationID, token)
}
