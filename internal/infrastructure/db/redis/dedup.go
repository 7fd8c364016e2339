package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DuplicateChecker suppresses repeated public form submissions, backed by
// Redis. Key format: dedup:<form>:<email>:<digest>
type DuplicateChecker struct {
	client *redis.Client
}

// NewDuplicateChecker creates a DuplicateChecker wrapping the given Redis client.
func NewDuplicateChecker(client *redis.Client) *DuplicateChecker {
	return &DuplicateChecker{client: client}
}

// IsDuplicate reports whether this exact submission was already accepted
// within the dedup window.
func (d *DuplicateChecker) IsDuplicate(ctx context.Context, form, email, digest string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(form, email, digest)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission has been accepted (expires after dedupTTL).
func (d *DuplicateChecker) Mark(ctx context.Context, form, email, digest string) error {
	return d.client.Set(ctx, d.key(form, email, digest), "1", dedupTTL).Err()
}

func (d *DuplicateChecker) key(form, email, digest string) string {
	return fmt.Sprintf("dedup:%s:%s:%s", form, email, digest)
}
