package domain

import (
	"fmt"

	"github.com/gatewise/visitflow/internal/utils"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

type UserType string

const (
	UserOwner   UserType = "owner"
	UserVisitor UserType = "visitor"
)

func ParseUserType(s string) (UserType, bool) {
	switch UserType(s) {
	case UserOwner, UserVisitor:
		return UserType(s), true
	default:
		return "", false
	}
}

// User covers both variants. Type is set once at construction and never
// changes; Address is valid only on owners.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Type         UserType `json:"type"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Address      string   `json:"address,omitempty"`
}

func (u *User) IsOwner() bool {
	return u.Type == UserOwner
}

func (u *User) IsVisitor() bool {
	return u.Type == UserVisitor
}

func (u *User) Validate() error {
	if _, ok := ParseUserType(string(u.Type)); !ok {
		return fmt.Errorf("unknown user type %q: %w", u.Type, sentinel.ErrInvalidInput)
	}
	if utils.NormalizeString(u.Name) == "" {
		return fmt.Errorf("name is required: %w", sentinel.ErrInvalidInput)
	}
	if !utils.IsValidEmail(u.Email) {
		return fmt.Errorf("invalid email %q: %w", u.Email, sentinel.ErrInvalidInput)
	}
	if !utils.IsValidPhone(u.Phone) {
		return fmt.Errorf("invalid phone %q: %w", u.Phone, sentinel.ErrInvalidInput)
	}
	if u.Type == UserOwner && utils.NormalizeString(u.Address) == "" {
		return fmt.Errorf("owner address is required: %w", sentinel.ErrInvalidInput)
	}
	if u.Type == UserVisitor && u.Address != "" {
		return fmt.Errorf("address is only valid on owners: %w", sentinel.ErrInvalidInput)
	}
	return nil
}
