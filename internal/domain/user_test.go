package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

func validOwner() domain.User {
	return domain.User{
		ID:      "owner-1",
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "555-123-4567",
		Type:    domain.UserOwner,
		Address: "123 Main Street, Apt 4B",
	}
}

func validVisitor() domain.User {
	return domain.User{
		ID:    "visitor-1",
		Name:  "Michael Brown",
		Email: "michael@example.com",
		Phone: "555-222-3333",
		Type:  domain.UserVisitor,
	}
}

func TestUserValidate(t *testing.T) {
	t.Run("valid owner and visitor pass", func(t *testing.T) {
		owner := validOwner()
		visitor := validVisitor()
		require.NoError(t, owner.Validate())
		require.NoError(t, visitor.Validate())
	})

	cases := []struct {
		name   string
		mutate func(u *domain.User)
	}{
		{"empty name", func(u *domain.User) { u.Name = "  " }},
		{"malformed email", func(u *domain.User) { u.Email = "not-an-email" }},
		{"short phone", func(u *domain.User) { u.Phone = "12" }},
		{"unknown type", func(u *domain.User) { u.Type = "tenant" }},
		{"owner without address", func(u *domain.User) { u.Address = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validOwner()
			tc.mutate(&u)
			assert.ErrorIs(t, u.Validate(), sentinel.ErrInvalidInput)
		})
	}

	t.Run("visitor with address is rejected", func(t *testing.T) {
		v := validVisitor()
		v.Address = "9 Elm Court"
		assert.ErrorIs(t, v.Validate(), sentinel.ErrInvalidInput)
	})
}
