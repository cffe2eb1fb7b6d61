// Package organization defines customer organizations and their contacts.
package organization

import (
	"net/mail"
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// Organization is a customer account (a school, club, or business) that
// places orders.
type Organization struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	City      string
	State     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Organization entity.
func (o *Organization) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if o.Email != "" && !validEmail(o.Email) {
		fields["email"] = "must be a valid email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Contact is a person at an organization. Orders reference a contact as the
// point of communication.
type Contact struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	Phone          string
	Role           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks business rules for the Contact entity.
func (c *Contact) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.OrganizationID) == "" {
		fields["organization_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if c.Email != "" && !validEmail(c.Email) {
		fields["email"] = "must be a valid email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
