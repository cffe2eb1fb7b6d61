package store

import (
	"context"
	"fmt"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
)

const organizationColumns = `id, name, email, phone, city, state, notes, created_at, updated_at`

const contactColumns = `id, organization_id, name, email, phone, role, created_at, updated_at`

// ListOrganizations returns every organization ordered by name.
func (s *Store) ListOrganizations(ctx context.Context) ([]organization.Organization, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+organizationColumns+` FROM organizations ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	out := []organization.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		out = append(out, *org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return out, nil
}

// GetOrganization returns one organization by ID.
func (s *Store) GetOrganization(ctx context.Context, id string) (*organization.Organization, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`), id)
	org, err := scanOrganization(row)
	if err != nil {
		return nil, mapError(err, "organization "+id)
	}
	return org, nil
}

// CreateOrganization inserts org with a fresh ID and timestamps.
func (s *Store) CreateOrganization(ctx context.Context, org *organization.Organization) (*organization.Organization, error) {
	now := s.now()
	id := newID()

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO organizations (`+organizationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		id, org.Name, org.Email, org.Phone, org.City, org.State, org.Notes,
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "creating organization")
	}
	return s.GetOrganization(ctx, id)
}

// UpdateOrganization overwrites the mutable fields of org.
func (s *Store) UpdateOrganization(ctx context.Context, org *organization.Organization) (*organization.Organization, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE organizations
		SET name = ?, email = ?, phone = ?, city = ?, state = ?, notes = ?, updated_at = ?
		WHERE id = ?`),
		org.Name, org.Email, org.Phone, org.City, org.State, org.Notes, toMillis(s.now()), org.ID,
	)
	if err != nil {
		return nil, mapError(err, "updating organization "+org.ID)
	}
	if err := requireAffected(res, "organization "+org.ID); err != nil {
		return nil, err
	}
	return s.GetOrganization(ctx, org.ID)
}

// ListContacts returns the contacts of one organization ordered by name.
func (s *Store) ListContacts(ctx context.Context, organizationID string) ([]organization.Contact, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT `+contactColumns+` FROM contacts
		WHERE organization_id = ?
		ORDER BY name, id`), organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	out := []organization.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return out, nil
}

// GetContact returns one contact by ID.
func (s *Store) GetContact(ctx context.Context, id string) (*organization.Contact, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+contactColumns+` FROM contacts WHERE id = ?`), id)
	c, err := scanContact(row)
	if err != nil {
		return nil, mapError(err, "contact "+id)
	}
	return c, nil
}

// CreateContact inserts contact with a fresh ID and timestamps.
func (s *Store) CreateContact(ctx context.Context, contact *organization.Contact) (*organization.Contact, error) {
	now := s.now()
	id := newID()

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO contacts (`+contactColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		id, contact.OrganizationID, contact.Name, contact.Email, contact.Phone, contact.Role,
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "creating contact")
	}
	return s.GetContact(ctx, id)
}

func scanOrganization(sc rowScanner) (*organization.Organization, error) {
	var (
		org              organization.Organization
		created, updated int64
	)
	if err := sc.Scan(&org.ID, &org.Name, &org.Email, &org.Phone, &org.City, &org.State, &org.Notes,
		&created, &updated); err != nil {
		return nil, err
	}
	org.CreatedAt = fromMillis(created)
	org.UpdatedAt = fromMillis(updated)
	return &org, nil
}

func scanContact(sc rowScanner) (*organization.Contact, error) {
	var (
		c                organization.Contact
		created, updated int64
	)
	if err := sc.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Email, &c.Phone, &c.Role,
		&created, &updated); err != nil {
		return nil, err
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return &c, nil
}
