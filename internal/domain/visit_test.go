package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

func TestParseRequestStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "denied"} {
		status, ok := domain.ParseRequestStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "Pending", "rejected", "canceled"} {
		_, ok := domain.ParseRequestStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestTransition(t *testing.T) {
	pending := func() *domain.VisitRequest {
		return &domain.VisitRequest{ID: "request-x", Status: domain.RequestPending}
	}

	t.Run("pending can be approved", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.Transition(domain.RequestApproved))
		assert.Equal(t, domain.RequestApproved, r.Status)
	})

	t.Run("pending can be denied", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.Transition(domain.RequestDenied))
		assert.Equal(t, domain.RequestDenied, r.Status)
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		for _, terminal := range []domain.RequestStatus{domain.RequestApproved, domain.RequestDenied} {
			r := &domain.VisitRequest{ID: "request-x", Status: terminal}
			err := r.Transition(domain.RequestApproved)
			require.ErrorIs(t, err, sentinel.ErrInvalidState)
			assert.Equal(t, terminal, r.Status, "status must not move off its terminal value")
		}
	})

	t.Run("transition back to pending is rejected", func(t *testing.T) {
		r := pending()
		err := r.Transition(domain.RequestPending)
		require.ErrorIs(t, err, sentinel.ErrInvalidInput)
		assert.Equal(t, domain.RequestPending, r.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		r := pending()
		err := r.Transition(domain.RequestStatus("canceled"))
		require.ErrorIs(t, err, sentinel.ErrInvalidInput)
		assert.Equal(t, domain.RequestPending, r.Status)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, domain.RequestPending.IsTerminal())
	assert.True(t, domain.RequestApproved.IsTerminal())
	assert.True(t, domain.RequestDenied.IsTerminal())
}
