package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// Compile-time check that DesignJobService implements ports.DesignJobService.
var _ ports.DesignJobService = (*DesignJobService)(nil)

// DesignJobService implements ports.DesignJobService.
type DesignJobService struct {
	jobs      ports.DesignJobRepository
	orders    ports.OrderRepository
	validator ports.ValidationService
	logger    *slog.Logger
}

// NewDesignJobService creates a new DesignJobService.
func NewDesignJobService(
	jobs ports.DesignJobRepository,
	orders ports.OrderRepository,
	validator ports.ValidationService,
	logger *slog.Logger,
) *DesignJobService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DesignJobService{jobs: jobs, orders: orders, validator: validator, logger: logger}
}

// ListDesignJobs returns jobs matching filter, newest first.
func (s *DesignJobService) ListDesignJobs(ctx context.Context, filter designjob.Filter) ([]designjob.DesignJob, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewFieldError("status", fmt.Sprintf("invalid: %q", filter.Status))
	}

	jobs, err := s.jobs.ListDesignJobs(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list design jobs",
			slog.String("operation", "ListDesignJobs"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return jobs, nil
}

// GetDesignJob returns a single design job by ID.
func (s *DesignJobService) GetDesignJob(ctx context.Context, id string) (*designjob.DesignJob, error) {
	return s.jobs.GetDesignJob(ctx, id)
}

// CreateDesignJob stores a new job and revalidates it along with its order.
func (s *DesignJobService) CreateDesignJob(ctx context.Context, job *designjob.DesignJob) (*designjob.DesignJob, error) {
	s.logger.InfoContext(ctx, "creating design job", slog.String("job_number", job.JobNumber))

	if job.Status == "" {
		job.Status = designjob.StatusPending
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkOrder(ctx, job.OrderID); err != nil {
		return nil, err
	}

	created, err := s.jobs.CreateDesignJob(ctx, job)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create design job",
			slog.String("operation", "CreateDesignJob"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating design job: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, affectedRefs(created, "")...)
	return created, nil
}

// UpdateDesignJob applies patch to the stored job. When the job moves to a
// different order, both orders are revalidated.
func (s *DesignJobService) UpdateDesignJob(ctx context.Context, id string, patch designjob.Patch) (*designjob.DesignJob, error) {
	s.logger.InfoContext(ctx, "updating design job", slog.String("design_job_id", id))

	job, err := s.jobs.GetDesignJob(ctx, id)
	if err != nil {
		return nil, err
	}
	previousOrder := job.OrderID

	patch.Apply(job)
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if job.OrderID != previousOrder {
		if err := s.checkOrder(ctx, job.OrderID); err != nil {
			return nil, err
		}
	}

	updated, err := s.jobs.UpdateDesignJob(ctx, job)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update design job",
			slog.String("operation", "UpdateDesignJob"),
			slog.String("design_job_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating design job: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, affectedRefs(updated, previousOrder)...)
	return updated, nil
}

func (s *DesignJobService) checkOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return nil
	}
	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewFieldError("order_id", "unknown order")
		}
		return fmt.Errorf("checking order: %w", err)
	}
	return nil
}

// affectedRefs lists the job and every order whose design approval check
// depends on it.
func affectedRefs(job *designjob.DesignJob, previousOrder string) []validation.EntityRef {
	refs := []validation.EntityRef{designJobRef(job.ID)}
	if job.OrderID != "" {
		refs = append(refs, orderRef(job.OrderID))
	}
	if previousOrder != "" && previousOrder != job.OrderID {
		refs = append(refs, orderRef(previousOrder))
	}
	return refs
}
