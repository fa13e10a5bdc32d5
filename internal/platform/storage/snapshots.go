package storage

import "context"

// Storage namespaces. Each collection persists as one opaque JSON blob under
// its namespace, written wholesale on every mutation and reloaded at start.
// There is no versioning or migration; the blob is the whole state.
const (
	VisitNamespace        = "visit-storage"
	NotificationNamespace = "notification-storage"
	AuthNamespace         = "auth-storage"
)

// Snapshots loads and saves one blob per namespace. Load returns
// sentinel.ErrNotFound (wrapped) when no snapshot exists yet; Save failures
// surface wrapped in sentinel.ErrUnavailable so callers can treat them as
// transient.
type Snapshots interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, blob []byte) error
	Delete(ctx context.Context, namespace string) error
}
