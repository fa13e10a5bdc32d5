package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/platform/storage"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

// NotificationRepo owns the notification collection. Append-only except for
// in-place read flips and explicit deletes; insertion order is preserved and
// the whole collection persists to the notification-storage namespace on
// every mutation.
type NotificationRepo struct {
	mu            sync.RWMutex
	notifications []domain.Notification
	snapshots     storage.Snapshots
}

func NewNotificationRepo(ctx context.Context, snapshots storage.Snapshots) (*NotificationRepo, error) {
	r := &NotificationRepo{snapshots: snapshots}

	blob, err := snapshots.Load(ctx, storage.NotificationNamespace)
	if errors.Is(err, sentinel.ErrNotFound) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load notification snapshot: %w", err)
	}
	if err := json.Unmarshal(blob, &r.notifications); err != nil {
		return nil, fmt.Errorf("decode notification snapshot: %w", err)
	}
	return r, nil
}

func (r *NotificationRepo) Append(ctx context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, *notification)
	if err := r.persistLocked(ctx); err != nil {
		r.notifications = r.notifications[:len(r.notifications)-1]
		return err
	}
	return nil
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []domain.Notification{}
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			results = append(results, r.notifications[i])
		}
	}
	return results, nil
}

func (r *NotificationRepo) UnreadCount(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flips the matching record to read. Unknown IDs are a no-op, not
// an error, and already-read records skip the snapshot write.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID != id {
			continue
		}
		if r.notifications[i].Read {
			return nil
		}

		r.notifications[i].Read = true
		if err := r.persistLocked(ctx); err != nil {
			r.notifications[i].Read = false
			return err
		}
		return nil
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var flipped []int
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].Read {
			r.notifications[i].Read = true
			flipped = append(flipped, i)
		}
	}
	if len(flipped) == 0 {
		return nil
	}

	if err := r.persistLocked(ctx); err != nil {
		for _, i := range flipped {
			r.notifications[i].Read = false
		}
		return err
	}
	return nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID != id {
			continue
		}

		removed := r.notifications[i]
		r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
		if err := r.persistLocked(ctx); err != nil {
			r.notifications = append(r.notifications[:i], append([]domain.Notification{removed}, r.notifications[i:]...)...)
			return err
		}
		return nil
	}
	return nil
}

func (r *NotificationRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
	return r.snapshots.Delete(ctx, storage.NotificationNamespace)
}

func (r *NotificationRepo) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(r.notifications)
	if err != nil {
		return fmt.Errorf("encode notification snapshot: %w", err)
	}
	return r.snapshots.Save(ctx, storage.NotificationNamespace, blob)
}
