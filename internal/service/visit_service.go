package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/repo"
	"github.com/gatewise/visitflow/internal/utils"
	"github.com/gatewise/visitflow/pkg/logger"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

// LifecycleHooks is invoked by the visit service after each committed
// mutation. The request is already persisted when a hook runs; hook failures
// are logged and accepted as partial progress, never rolled back into the
// request collection.
type LifecycleHooks interface {
	OnRequestCreated(ctx context.Context, request *domain.VisitRequest) error
	OnRequestStatusChanged(ctx context.Context, request *domain.VisitRequest) error
}

type VisitService interface {
	CreateRequest(ctx context.Context, visitorID, ownerID, purpose, date, timeOfDay string) (*domain.VisitRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus) (*domain.VisitRequest, error)
	GetRequest(ctx context.Context, requestID string) (*domain.VisitRequest, error)
	ListRequestsByVisitor(ctx context.Context, visitorID string) ([]domain.VisitRequest, error)
	ListRequestsByOwner(ctx context.Context, ownerID string) ([]domain.VisitRequest, error)
}

type visitService struct {
	visitRepo repo.VisitRepository
	userRepo  repo.UserRepository
	hooks     LifecycleHooks
}

func NewVisitService(visitRepo repo.VisitRepository, userRepo repo.UserRepository, hooks LifecycleHooks) VisitService {
	return &visitService{
		visitRepo: visitRepo,
		userRepo:  userRepo,
		hooks:     hooks,
	}
}

// CreateRequest validates both referenced users, appends the pending request
// and then notifies the owner through the lifecycle hooks.
func (s *visitService) CreateRequest(ctx context.Context, visitorID, ownerID, purpose, date, timeOfDay string) (*domain.VisitRequest, error) {
	purpose = utils.NormalizeString(purpose)
	date = utils.NormalizeString(date)
	timeOfDay = utils.NormalizeString(timeOfDay)
	if purpose == "" || date == "" || timeOfDay == "" {
		return nil, fmt.Errorf("purpose, date and time are required: %w", sentinel.ErrInvalidInput)
	}

	visitor, err := s.userRepo.FindByID(ctx, visitorID)
	if err != nil || !visitor.IsVisitor() {
		return nil, fmt.Errorf("visitor %s: %w", visitorID, sentinel.ErrNotFound)
	}
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil || !owner.IsOwner() {
		return nil, fmt.Errorf("owner %s: %w", ownerID, sentinel.ErrNotFound)
	}

	request := &domain.VisitRequest{
		ID:        "request-" + uuid.NewString(),
		VisitorID: visitorID,
		OwnerID:   ownerID,
		Purpose:   purpose,
		Date:      date,
		Time:      timeOfDay,
		Status:    domain.RequestPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.visitRepo.Append(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if err := s.hooks.OnRequestCreated(ctx, request); err != nil {
		logger.ErrorContext(ctx, "Failed to notify owner of new request",
			"error", err, "visit_request_id", request.ID, "owner_id", ownerID)
	}

	result := *request
	result.Visitor = visitor
	result.Owner = owner
	return &result, nil
}

// UpdateRequestStatus moves a pending request to approved or denied. The
// transition table in the repository rejects everything else; the visitor is
// notified with the post-mutation record.
func (s *visitService) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus) (*domain.VisitRequest, error) {
	if status != domain.RequestApproved && status != domain.RequestDenied {
		return nil, fmt.Errorf("status must be %q or %q: %w",
			domain.RequestApproved, domain.RequestDenied, sentinel.ErrInvalidInput)
	}

	updated, err := s.visitRepo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	if err := s.hooks.OnRequestStatusChanged(ctx, updated); err != nil {
		logger.ErrorContext(ctx, "Failed to notify visitor of decision",
			"error", err, "visit_request_id", requestID, "status", status)
	}

	s.attachVisitor(ctx, updated)
	s.attachOwner(ctx, updated)
	return updated, nil
}

func (s *visitService) GetRequest(ctx context.Context, requestID string) (*domain.VisitRequest, error) {
	request, err := s.visitRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.attachVisitor(ctx, request)
	s.attachOwner(ctx, request)
	return request, nil
}

// ListRequestsByVisitor returns the visitor's requests with the owner join
// resolved. Unresolvable owners leave the join unset rather than failing the
// whole read.
func (s *visitService) ListRequestsByVisitor(ctx context.Context, visitorID string) ([]domain.VisitRequest, error) {
	requests, err := s.visitRepo.ListByVisitor(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visitor requests: %w", err)
	}
	for i := range requests {
		s.attachOwner(ctx, &requests[i])
	}
	return requests, nil
}

func (s *visitService) ListRequestsByOwner(ctx context.Context, ownerID string) ([]domain.VisitRequest, error) {
	requests, err := s.visitRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner requests: %w", err)
	}
	for i := range requests {
		s.attachVisitor(ctx, &requests[i])
	}
	return requests, nil
}

func (s *visitService) attachVisitor(ctx context.Context, request *domain.VisitRequest) {
	visitor, err := s.userRepo.FindByID(ctx, request.VisitorID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			logger.DebugContext(ctx, "Visitor join lookup failed", "error", err, "visitor_id", request.VisitorID)
		}
		return
	}
	request.Visitor = visitor
}

func (s *visitService) attachOwner(ctx context.Context, request *domain.VisitRequest) {
	owner, err := s.userRepo.FindByID(ctx, request.OwnerID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			logger.DebugContext(ctx, "Owner join lookup failed", "error", err, "owner_id", request.OwnerID)
		}
		return
	}
	request.Owner = owner
}
