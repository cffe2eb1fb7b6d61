package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	appctx "github.com/suttonsam862/WholesaleOS4.0-sub009/internal/app/context"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/app/fanout"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/config"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/telemetry"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// Compile-time check that ValidationService implements ports.ValidationService.
var _ ports.ValidationService = (*ValidationService)(nil)

// ValidationService runs the advisory check catalogs, persists each run as a
// time-boxed report, and announces status changes. It reads entities through
// the repositories and never writes to them.
type ValidationService struct {
	orders   ports.OrderRepository
	jobs     ports.DesignJobRepository
	results  ports.ValidationRepository
	notifier ports.ValidationNotifier
	metrics  *telemetry.Metrics
	cfg      config.ValidationConfig
	clock    func() time.Time
	logger   *slog.Logger
}

// ValidationOption configures optional collaborators of a ValidationService.
type ValidationOption func(*ValidationService)

// WithNotifier sets the status-change notifier. Without one, changes are
// only logged.
func WithNotifier(n ports.ValidationNotifier) ValidationOption {
	return func(s *ValidationService) { s.notifier = n }
}

// WithMetrics sets the instruments that record run counts and durations.
func WithMetrics(m *telemetry.Metrics) ValidationOption {
	return func(s *ValidationService) { s.metrics = m }
}

// WithClock overrides the time source used for check evaluation and the
// result time box.
func WithClock(clock func() time.Time) ValidationOption {
	return func(s *ValidationService) { s.clock = clock }
}

// NewValidationService creates a ValidationService. A nil logger discards logs.
func NewValidationService(
	orders ports.OrderRepository,
	jobs ports.DesignJobRepository,
	results ports.ValidationRepository,
	cfg config.ValidationConfig,
	logger *slog.Logger,
	opts ...ValidationOption,
) *ValidationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ValidationService{
		orders:  orders,
		jobs:    jobs,
		results: results,
		cfg:     cfg,
		clock:   time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate dispatches on ref.Type.
func (s *ValidationService) Validate(ctx context.Context, ref validation.EntityRef) (*validation.Report, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}

	switch ref.Type {
	case validation.EntityOrder:
		return s.ValidateOrder(ctx, ref.ID)
	case validation.EntityLineItem:
		return s.ValidateLineItem(ctx, ref.ID)
	case validation.EntityDesignJob:
		return s.ValidateDesignJob(ctx, ref.ID)
	default:
		return nil, unsupportedEntityType(ref.Type)
	}
}

// ValidateOrder runs the order catalog and then the line item catalog for
// every item on the order. It returns the order's report.
func (s *ValidationService) ValidateOrder(ctx context.Context, orderID string) (*validation.Report, error) {
	s.logger.InfoContext(ctx, "validating order", slog.String("order_id", orderID))
	start := time.Now()
	rc := appctx.Ensure(ctx)

	o, err := s.loadOrder(rc, orderID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateOrder", "order", orderID, err)
	}

	items, err := s.orders.ListLineItems(ctx, orderID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateOrder", "line items", orderID, err)
	}

	jobs, err := s.jobs.ListDesignJobs(ctx, designjob.Filter{OrderID: orderID})
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateOrder", "design jobs", orderID, err)
	}

	mfg, err := s.loadManufacturing(ctx, orderID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateOrder", "manufacturing record", orderID, err)
	}

	subject := validation.OrderSubject{Order: *o, LineItems: items, DesignJobs: jobs, Manufacturing: mfg}
	outcomes := validation.Run(validation.OrderChecks(), subject, s.clock())

	report, err := s.persist(ctx, validation.EntityOrder, orderID, outcomes, start)
	if err != nil {
		return nil, err
	}

	for i := range items {
		itemStart := time.Now()
		sub := validation.LineItemSubject{Item: items[i], Order: o}
		itemOutcomes := validation.Run(validation.LineItemChecks(), sub, s.clock())
		if _, err := s.persist(ctx, validation.EntityLineItem, items[i].ID, itemOutcomes, itemStart); err != nil {
			return nil, fmt.Errorf("validating line item %s of order %s: %w", items[i].ID, orderID, err)
		}
	}

	return report, nil
}

// ValidateLineItem runs the line item catalog for one item. The parent order
// is memoized per request so sibling items share one fetch.
func (s *ValidationService) ValidateLineItem(ctx context.Context, itemID string) (*validation.Report, error) {
	s.logger.InfoContext(ctx, "validating line item", slog.String("line_item_id", itemID))
	start := time.Now()

	item, err := s.orders.GetLineItem(ctx, itemID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateLineItem", "line item", itemID, err)
	}

	parent, err := s.optionalOrder(appctx.Ensure(ctx), item.OrderID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateLineItem", "order", item.OrderID, err)
	}

	subject := validation.LineItemSubject{Item: *item, Order: parent}
	outcomes := validation.Run(validation.LineItemChecks(), subject, s.clock())

	return s.persist(ctx, validation.EntityLineItem, itemID, outcomes, start)
}

// ValidateDesignJob runs the design job catalog for one job.
func (s *ValidationService) ValidateDesignJob(ctx context.Context, jobID string) (*validation.Report, error) {
	s.logger.InfoContext(ctx, "validating design job", slog.String("design_job_id", jobID))
	start := time.Now()

	job, err := s.jobs.GetDesignJob(ctx, jobID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateDesignJob", "design job", jobID, err)
	}

	linked, err := s.optionalOrder(appctx.Ensure(ctx), job.OrderID)
	if err != nil {
		return nil, s.loadFailed(ctx, "ValidateDesignJob", "order", job.OrderID, err)
	}

	subject := validation.DesignJobSubject{Job: *job, Order: linked}
	outcomes := validation.Run(validation.DesignJobChecks(), subject, s.clock())

	return s.persist(ctx, validation.EntityDesignJob, jobID, outcomes, start)
}

// GetReport returns the stored report for ref. A missing or expired report
// is refreshed when refresh-on-read is enabled.
func (s *ValidationService) GetReport(ctx context.Context, ref validation.EntityRef) (*validation.Report, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}

	report, err := s.results.GetReport(ctx, ref)
	switch {
	case err == nil && !report.Summary.Expired(s.clock()):
		return report, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		s.logger.ErrorContext(ctx, "failed to load validation report",
			slog.String("operation", "GetReport"),
			slog.String("entity", ref.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if !s.cfg.RefreshOnRead {
		return nil, fmt.Errorf("no current validation report for %s: %w", ref, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "refreshing validation report on read", slog.String("entity", ref.String()))
	return s.Validate(ctx, ref)
}

// ListSummaries returns summaries for the dashboard.
func (s *ValidationService) ListSummaries(ctx context.Context, filter validation.SummaryFilter) ([]validation.Summary, error) {
	fields := make(map[string]string)
	if filter.EntityType != "" && !filter.EntityType.IsValid() {
		fields["entity_type"] = fmt.Sprintf("invalid: %q", filter.EntityType)
	}
	if filter.Status != "" && (!filter.Status.IsValid() || filter.Status == validation.StatusSkipped) {
		fields["status"] = fmt.Sprintf("invalid: %q", filter.Status)
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	summaries, err := s.results.ListSummaries(ctx, filter, s.clock())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list validation summaries",
			slog.String("operation", "ListSummaries"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return summaries, nil
}

// BulkValidate validates refs concurrently. Workers share one request
// context so that an order fetched for one ref is reused by the others.
func (s *ValidationService) BulkValidate(ctx context.Context, refs []validation.EntityRef) (*ports.BulkValidateResult, error) {
	s.logger.InfoContext(ctx, "bulk validating", slog.Int("count", len(refs)))

	switch {
	case len(refs) == 0:
		return nil, domain.NewFieldError("refs", domain.MsgMustNotEmpty)
	case s.cfg.BulkMaxItems > 0 && len(refs) > s.cfg.BulkMaxItems:
		return nil, domain.NewFieldError("refs", fmt.Sprintf("must contain at most %d items, got %d", s.cfg.BulkMaxItems, len(refs)))
	}

	rc := appctx.Ensure(ctx)
	ctx = appctx.WithRequestContext(ctx, rc)

	results := fanout.Run(ctx, s.cfg.BulkConcurrency, refs,
		func(ctx context.Context, ref validation.EntityRef) (*validation.Report, error) {
			return s.Validate(ctx, ref)
		})

	out := &ports.BulkValidateResult{
		Reports: make([]validation.Report, 0, len(refs)),
		Errors:  []ports.BulkValidateError{},
	}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkValidateError{Ref: refs[i], Err: r.Err})
			continue
		}
		out.Reports = append(out.Reports, *r.Value)
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk validation finished with failures",
			slog.String("operation", "BulkValidate"),
			slog.Int("succeeded", len(out.Reports)),
			slog.Int("failed", len(out.Errors)),
		)
	}
	return out, nil
}

// PurgeExpired deletes every run whose time box has closed.
func (s *ValidationService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.results.PurgeExpired(ctx, s.clock())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to purge expired validation results",
			slog.String("operation", "PurgeExpired"),
			slog.Any("error", err),
		)
		return 0, err
	}

	s.logger.InfoContext(ctx, "purged expired validation results", slog.Int64("removed", removed))
	return removed, nil
}

// persist stamps outcomes into a run, stores it, records metrics and
// announces a status change.
func (s *ValidationService) persist(
	ctx context.Context,
	entityType validation.EntityType,
	entityID string,
	outcomes []validation.Outcome,
	start time.Time,
) (*validation.Report, error) {
	ref := validation.EntityRef{Type: entityType, ID: entityID}

	previous, err := s.results.GetSummary(ctx, ref)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to read previous validation summary",
				slog.String("operation", "persist"),
				slog.String("entity", ref.String()),
				slog.Any("error", err),
			)
		}
		previous = nil
	}

	report := validation.NewRun(entityType, entityID, outcomes, s.clock(), s.cfg.ResultTTL)

	if err := s.results.SaveRun(ctx, report); err != nil {
		s.logger.ErrorContext(ctx, "failed to save validation run",
			slog.String("operation", "persist"),
			slog.String("entity", ref.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving validation run for %s: %w", ref, err)
	}

	s.metrics.RecordValidationRun(ctx, entityType.String(), report.Summary.Status.String(), time.Since(start))

	s.logger.InfoContext(ctx, "validation run saved",
		slog.String("entity", ref.String()),
		slog.String("run_id", report.Summary.RunID),
		slog.String("status", report.Summary.Status.String()),
		slog.Int("warnings", report.Summary.WarningCount),
		slog.Int("errors", report.Summary.ErrorCount),
	)

	s.notifyChange(ctx, previous, &report.Summary)
	return report, nil
}

func (s *ValidationService) notifyChange(ctx context.Context, previous, current *validation.Summary) {
	ev, changed := validation.DetectStatusChange(previous, current)
	if !changed || s.notifier == nil {
		return
	}

	if err := s.notifier.NotifyStatusChanged(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "failed to deliver validation status change",
			slog.String("operation", "notifyChange"),
			slog.String("entity", current.Ref().String()),
			slog.String("status", ev.Current.String()),
			slog.Any("error", err),
		)
	}
}

// loadOrder fetches an order once per request.
func (s *ValidationService) loadOrder(rc *appctx.RequestContext, id string) (*order.Order, error) {
	return appctx.NewDataProvider(orderCacheKey(id), func(ctx context.Context) (*order.Order, error) {
		return s.orders.GetOrder(ctx, id)
	}).Get(rc)
}

// optionalOrder returns nil for an empty or dangling order reference; the
// checks that need the order report themselves as skipped.
func (s *ValidationService) optionalOrder(rc *appctx.RequestContext, id string) (*order.Order, error) {
	if id == "" {
		return nil, nil
	}
	o, err := s.loadOrder(rc, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return o, err
}

func (s *ValidationService) loadManufacturing(ctx context.Context, orderID string) (*manufacturing.Record, error) {
	rec, err := s.orders.GetManufacturing(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return rec, err
}

func (s *ValidationService) loadFailed(ctx context.Context, operation, what, id string, err error) error {
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.ErrorContext(ctx, "failed to load validation subject",
			slog.String("operation", operation),
			slog.String("subject", what),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
	return fmt.Errorf("loading %s %s: %w", what, id, err)
}

// orderCacheKey is the request cache key for an order. Writers that change
// an order drop this key so later reads in the same request see the write.
func orderCacheKey(id string) string {
	return "order:" + id
}

func checkRef(ref validation.EntityRef) error {
	if !ref.Type.IsValid() {
		return unsupportedEntityType(ref.Type)
	}
	if strings.TrimSpace(ref.ID) == "" {
		return domain.NewFieldError("id", domain.MsgRequired)
	}
	return nil
}

func unsupportedEntityType(t validation.EntityType) error {
	return domain.NewFieldError("entity_type", fmt.Sprintf("unsupported entity type %q", t))
}
