package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// Compile-time check that OrganizationService implements ports.OrganizationService.
var _ ports.OrganizationService = (*OrganizationService)(nil)

// OrganizationService implements ports.OrganizationService.
type OrganizationService struct {
	repo   ports.OrganizationRepository
	logger *slog.Logger
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(repo ports.OrganizationRepository, logger *slog.Logger) *OrganizationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrganizationService{repo: repo, logger: logger}
}

// ListOrganizations returns every organization, newest first.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]organization.Organization, error) {
	orgs, err := s.repo.ListOrganizations(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list organizations",
			slog.String("operation", "ListOrganizations"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return orgs, nil
}

// GetOrganization returns a single organization by ID.
func (s *OrganizationService) GetOrganization(ctx context.Context, id string) (*organization.Organization, error) {
	return s.repo.GetOrganization(ctx, id)
}

// CreateOrganization validates and stores a new organization.
func (s *OrganizationService) CreateOrganization(ctx context.Context, org *organization.Organization) (*organization.Organization, error) {
	s.logger.InfoContext(ctx, "creating organization", slog.String("name", org.Name))

	if err := org.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateOrganization(ctx, org)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create organization",
			slog.String("operation", "CreateOrganization"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating organization: %w", err)
	}
	return created, nil
}

// UpdateOrganization applies patch to the stored organization.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, id string, patch organization.Patch) (*organization.Organization, error) {
	s.logger.InfoContext(ctx, "updating organization", slog.String("organization_id", id))

	org, err := s.repo.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(org)
	if err := org.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateOrganization(ctx, org)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update organization",
			slog.String("operation", "UpdateOrganization"),
			slog.String("organization_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating organization: %w", err)
	}
	return updated, nil
}

// ListContacts returns the contacts of an existing organization.
func (s *OrganizationService) ListContacts(ctx context.Context, organizationID string) ([]organization.Contact, error) {
	if _, err := s.repo.GetOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	contacts, err := s.repo.ListContacts(ctx, organizationID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list contacts",
			slog.String("operation", "ListContacts"),
			slog.String("organization_id", organizationID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return contacts, nil
}

// AddContact attaches a new contact to an existing organization.
func (s *OrganizationService) AddContact(ctx context.Context, organizationID string, contact *organization.Contact) (*organization.Contact, error) {
	s.logger.InfoContext(ctx, "adding contact",
		slog.String("organization_id", organizationID),
		slog.String("name", contact.Name),
	)

	if _, err := s.repo.GetOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	contact.OrganizationID = organizationID
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create contact",
			slog.String("operation", "AddContact"),
			slog.String("organization_id", organizationID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("adding contact: %w", err)
	}
	return created, nil
}
