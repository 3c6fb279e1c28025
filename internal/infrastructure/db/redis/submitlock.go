package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// submitTTL bounds how long a lock can linger if a release is lost (crash
// mid-submission). Normal flow releases explicitly.
const submitTTL = 30 * time.Second

// SubmitLock serializes reservation submissions per session: while one
// create/update is in flight, a second acquire for the same session fails.
// Key format: submit:<session_id>
type SubmitLock struct {
	client *redis.Client
}

func NewSubmitLock(client *redis.Client) *SubmitLock {
	return &SubmitLock{client: client}
}

// Acquire takes the lock for sessionID. Returns false when a submission is
// already outstanding.
func (l *SubmitLock) Acquire(ctx context.Context, sessionID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(sessionID), "1", submitTTL).Result()
	if err != nil {
		return false, fmt.Errorf("submit lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock once the gateway call has completed, success or not.
func (l *SubmitLock) Release(ctx context.Context, sessionID string) error {
	return l.client.Del(ctx, l.key(sessionID)).Err()
}

func (l *SubmitLock) key(sessionID string) string {
	return "submit:" + sessionID
}
