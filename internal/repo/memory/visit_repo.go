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

// VisitRepo owns the visit-request collection: an insertion-ordered slice
// persisted wholesale to the visit-storage namespace on every mutation.
// Stored records never carry the Visitor/Owner join fields; those belong to
// the service layer's returned copies only.
type VisitRepo struct {
	mu        sync.RWMutex
	requests  []domain.VisitRequest
	snapshots storage.Snapshots
}

func NewVisitRepo(ctx context.Context, snapshots storage.Snapshots) (*VisitRepo, error) {
	r := &VisitRepo{snapshots: snapshots}

	blob, err := snapshots.Load(ctx, storage.VisitNamespace)
	if errors.Is(err, sentinel.ErrNotFound) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load visit snapshot: %w", err)
	}
	if err := json.Unmarshal(blob, &r.requests); err != nil {
		return nil, fmt.Errorf("decode visit snapshot: %w", err)
	}
	return r, nil
}

func (r *VisitRepo) Append(ctx context.Context, request *domain.VisitRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *request
	stored.Visitor = nil
	stored.Owner = nil

	r.requests = append(r.requests, stored)
	if err := r.persistLocked(ctx); err != nil {
		r.requests = r.requests[:len(r.requests)-1]
		return err
	}
	return nil
}

func (r *VisitRepo) GetByID(_ context.Context, id string) (*domain.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			request := r.requests[i]
			return &request, nil
		}
	}
	return nil, fmt.Errorf("visit request %s: %w", id, sentinel.ErrNotFound)
}

func (r *VisitRepo) List(_ context.Context) ([]domain.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.VisitRequest{}, r.requests...), nil
}

func (r *VisitRepo) ListByVisitor(_ context.Context, visitorID string) ([]domain.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []domain.VisitRequest{}
	for i := range r.requests {
		if r.requests[i].VisitorID == visitorID {
			results = append(results, r.requests[i])
		}
	}
	return results, nil
}

func (r *VisitRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []domain.VisitRequest{}
	for i := range r.requests {
		if r.requests[i].OwnerID == ownerID {
			results = append(results, r.requests[i])
		}
	}
	return results, nil
}

// UpdateStatus applies the transition table to the stored record. The change
// is rolled back if the snapshot save fails, so callers never observe a
// committed transition that was not persisted.
func (r *VisitRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.VisitRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID != id {
			continue
		}

		previous := r.requests[i].Status
		if err := r.requests[i].Transition(status); err != nil {
			return nil, err
		}
		if err := r.persistLocked(ctx); err != nil {
			r.requests[i].Status = previous
			return nil, err
		}

		request := r.requests[i]
		return &request, nil
	}
	return nil, fmt.Errorf("visit request %s: %w", id, sentinel.ErrNotFound)
}

func (r *VisitRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = nil
	return r.snapshots.Delete(ctx, storage.VisitNamespace)
}

func (r *VisitRepo) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(r.requests)
	if err != nil {
		return fmt.Errorf("encode visit snapshot: %w", err)
	}
	return r.snapshots.Save(ctx, storage.VisitNamespace, blob)
}
