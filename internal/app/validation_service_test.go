package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/config"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/mocks"
)

const testTTL = 24 * time.Hour

type validationMocks struct {
	orders   *mocks.MockOrderRepository
	jobs     *mocks.MockDesignJobRepository
	results  *mocks.MockValidationRepository
	notifier *mocks.MockValidationNotifier
}

func testValidationConfig() config.ValidationConfig {
	return config.ValidationConfig{
		ResultTTL:       testTTL,
		RefreshOnRead:   true,
		BulkConcurrency: 1,
		BulkMaxItems:    3,
	}
}

func newValidationService(t *testing.T, cfg config.ValidationConfig) (*ValidationService, validationMocks) {
	t.Helper()
	m := validationMocks{
		orders:   mocks.NewMockOrderRepository(t),
		jobs:     mocks.NewMockDesignJobRepository(t),
		results:  mocks.NewMockValidationRepository(t),
		notifier: mocks.NewMockValidationNotifier(t),
	}
	svc := NewValidationService(m.orders, m.jobs, m.results, cfg, discardLogger(),
		WithNotifier(m.notifier),
		WithClock(func() time.Time { return testNow }),
	)
	return svc, m
}

func lineItemRef(id string) validation.EntityRef {
	return validation.EntityRef{Type: validation.EntityLineItem, ID: id}
}

// expectLineItemRun wires a single line item run for an item with no
// quantity, which always ends in error status.
func (m validationMocks) expectLineItemRun(previous *validation.Summary) {
	item := validLineItem()
	item.Quantity = 0
	item.Sizes = nil
	o := validOrder()

	m.orders.EXPECT().GetLineItem(mock.Anything, "item-1").Return(&item, nil).Once()
	m.orders.EXPECT().GetOrder(mock.Anything, "order-1").Return(&o, nil).Once()
	if previous != nil {
		m.results.EXPECT().GetSummary(mock.Anything, lineItemRef("item-1")).Return(previous, nil).Once()
	} else {
		m.results.EXPECT().GetSummary(mock.Anything, lineItemRef("item-1")).Return(nil, domain.ErrNotFound).Once()
	}
	m.results.EXPECT().SaveRun(mock.Anything, mock.Anything).Return(nil).Once()
}

func TestNewValidationService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewValidationService(nil, nil, nil, testValidationConfig(), nil)
	if svc.logger == nil {
		t.Fatal("NewValidationService(nil logger) should create a no-op logger, got nil")
	}
	if svc.clock == nil {
		t.Fatal("NewValidationService should default the clock")
	}
}

func TestValidationService_ValidateOrder(t *testing.T) {
	t.Parallel()

	svc, m := newValidationService(t, testValidationConfig())
	o := validOrder()
	second := validLineItem()
	second.ID = "item-2"

	m.orders.EXPECT().GetOrder(mock.Anything, "order-1").Return(&o, nil).Once()
	m.orders.EXPECT().ListLineItems(mock.Anything, "order-1").Return([]order.LineItem{validLineItem(), second}, nil).Once()
	m.jobs.EXPECT().ListDesignJobs(mock.Anything, designjob.Filter{OrderID: "order-1"}).
		Return([]designjob.DesignJob{validDesignJob()}, nil).Once()
	m.orders.EXPECT().GetManufacturing(mock.Anything, "order-1").Return(nil, domain.ErrNotFound).Once()
	m.results.EXPECT().GetSummary(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Times(3)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

	var (
		mu    sync.Mutex
		saved []validation.EntityRef
	)
	m.results.EXPECT().SaveRun(mock.Anything, mock.Anything).
		Run(func(_ context.Context, report *validation.Report) {
			mu.Lock()
			saved = append(saved, report.Summary.Ref())
			mu.Unlock()
		}).Return(nil).Times(3)

	report, err := svc.ValidateOrder(ctxWithRC(), "order-1")
	if err != nil {
		t.Fatalf("ValidateOrder() unexpected error: %v", err)
	}

	if report.Summary.EntityType != validation.EntityOrder || report.Summary.EntityID != "order-1" {
		t.Errorf("ValidateOrder() summary ref = %s, want order/order-1", report.Summary.Ref())
	}
	if report.Summary.RunID == "" {
		t.Error("ValidateOrder() summary has no run ID")
	}
	if want := testNow.Add(testTTL); !report.Summary.ExpiresAt.Equal(want) {
		t.Errorf("ValidateOrder() ExpiresAt = %v, want %v", report.Summary.ExpiresAt, want)
	}
	if len(report.Results) != len(validation.OrderChecks()) {
		t.Errorf("ValidateOrder() results = %d, want %d", len(report.Results), len(validation.OrderChecks()))
	}

	want := []validation.EntityRef{orderRef("order-1"), lineItemRef("item-1"), lineItemRef("item-2")}
	if len(saved) != len(want) {
		t.Fatalf("saved runs = %v, want %v", saved, want)
	}
	for i := range want {
		if saved[i] != want[i] {
			t.Errorf("saved[%d] = %s, want %s", i, saved[i], want[i])
		}
	}
}

func TestValidationService_ValidateOrder_NotFound(t *testing.T) {
	t.Parallel()

	svc, m := newValidationService(t, testValidationConfig())
	m.orders.EXPECT().GetOrder(mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	_, err := svc.ValidateOrder(ctxWithRC(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ValidateOrder() error = %v, want ErrNotFound", err)
	}
}

func TestValidationService_Notifications(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		previous   *validation.Summary
		notifyErr  error
		wantNotify bool
	}{
		{name: "first run that fails", previous: nil, wantNotify: true},
		{name: "pass to error", previous: &validation.Summary{Status: validation.StatusPass}, wantNotify: true},
		{name: "unchanged status", previous: &validation.Summary{Status: validation.StatusError}, wantNotify: false},
		{name: "notifier failure is swallowed", previous: &validation.Summary{Status: validation.StatusWarning}, notifyErr: domain.ErrUnavailable, wantNotify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newValidationService(t, testValidationConfig())
			m.expectLineItemRun(tt.previous)

			if tt.wantNotify {
				m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.MatchedBy(func(ev validation.StatusChanged) bool {
					wantPrev := validation.Status("")
					if tt.previous != nil {
						wantPrev = tt.previous.Status
					}
					return ev.EntityID == "item-1" &&
						ev.EntityType == validation.EntityLineItem &&
						ev.Previous == wantPrev &&
						ev.Current == validation.StatusError &&
						ev.ErrorCount > 0
				})).Return(tt.notifyErr).Once()
			}

			report, err := svc.ValidateLineItem(ctxWithRC(), "item-1")
			if err != nil {
				t.Fatalf("ValidateLineItem() unexpected error: %v", err)
			}
			if report.Summary.Status != validation.StatusError {
				t.Errorf("ValidateLineItem() status = %q, want error", report.Summary.Status)
			}
		})
	}
}

func TestValidationService_SaveRunFailure(t *testing.T) {
	t.Parallel()

	svc, m := newValidationService(t, testValidationConfig())
	item := validLineItem()
	o := validOrder()
	m.orders.EXPECT().GetLineItem(mock.Anything, "item-1").Return(&item, nil).Once()
	m.orders.EXPECT().GetOrder(mock.Anything, "order-1").Return(&o, nil).Once()
	m.results.EXPECT().GetSummary(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()
	m.results.EXPECT().SaveRun(mock.Anything, mock.Anything).Return(domain.ErrUnavailable).Once()

	_, err := svc.ValidateLineItem(ctxWithRC(), "item-1")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ValidateLineItem() error = %v, want ErrUnavailable", err)
	}
}

func TestValidationService_ValidateDesignJob_DanglingOrder(t *testing.T) {
	t.Parallel()

	svc, m := newValidationService(t, testValidationConfig())
	job := validDesignJob()
	job.OrderID = "order-gone"

	m.jobs.EXPECT().GetDesignJob(mock.Anything, "job-1").Return(&job, nil).Once()
	m.orders.EXPECT().GetOrder(mock.Anything, "order-gone").Return(nil, domain.ErrNotFound).Once()
	m.results.EXPECT().GetSummary(mock.Anything, designJobRef("job-1")).Return(nil, domain.ErrNotFound).Once()
	m.results.EXPECT().SaveRun(mock.Anything, mock.Anything).Return(nil).Once()
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

	report, err := svc.ValidateDesignJob(ctxWithRC(), "job-1")
	if err != nil {
		t.Fatalf("ValidateDesignJob() unexpected error: %v", err)
	}
	if report.Summary.EntityType != validation.EntityDesignJob {
		t.Errorf("ValidateDesignJob() entity type = %q, want design_job", report.Summary.EntityType)
	}
}

func TestValidationService_Validate_RejectsBadRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  validation.EntityRef
	}{
		{name: "unknown type", ref: validation.EntityRef{Type: "invoice", ID: "x"}},
		{name: "empty type", ref: validation.EntityRef{ID: "x"}},
		{name: "blank id", ref: validation.EntityRef{Type: validation.EntityOrder, ID: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newValidationService(t, testValidationConfig())

			_, err := svc.Validate(ctxWithRC(), tt.ref)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate(%s) error = %v, want ErrValidation", tt.ref, err)
			}
		})
	}
}

func TestValidationService_GetReport(t *testing.T) {
	t.Parallel()

	fresh := &validation.Report{Summary: validation.Summary{
		EntityType: validation.EntityLineItem,
		EntityID:   "item-1",
		Status:     validation.StatusPass,
		ExpiresAt:  testNow.Add(time.Minute),
	}}
	expired := &validation.Report{Summary: validation.Summary{
		EntityType: validation.EntityLineItem,
		EntityID:   "item-1",
		Status:     validation.StatusPass,
		ExpiresAt:  testNow,
	}}

	t.Run("fresh report is returned as stored", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		m.results.EXPECT().GetReport(mock.Anything, lineItemRef("item-1")).Return(fresh, nil).Once()

		got, err := svc.GetReport(ctxWithRC(), lineItemRef("item-1"))
		if err != nil {
			t.Fatalf("GetReport() unexpected error: %v", err)
		}
		if got != fresh {
			t.Error("GetReport() should return the stored report")
		}
	})

	t.Run("expired report is refreshed", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		m.results.EXPECT().GetReport(mock.Anything, lineItemRef("item-1")).Return(expired, nil).Once()
		m.expectLineItemRun(&validation.Summary{Status: validation.StatusError})

		got, err := svc.GetReport(ctxWithRC(), lineItemRef("item-1"))
		if err != nil {
			t.Fatalf("GetReport() unexpected error: %v", err)
		}
		if !got.Summary.LastRunAt.Equal(testNow) {
			t.Errorf("GetReport() LastRunAt = %v, want a fresh run at %v", got.Summary.LastRunAt, testNow)
		}
	})

	t.Run("missing report is refreshed", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		m.results.EXPECT().GetReport(mock.Anything, lineItemRef("item-1")).Return(nil, domain.ErrNotFound).Once()
		m.expectLineItemRun(&validation.Summary{Status: validation.StatusError})

		if _, err := svc.GetReport(ctxWithRC(), lineItemRef("item-1")); err != nil {
			t.Fatalf("GetReport() unexpected error: %v", err)
		}
	})

	t.Run("expired report without refresh", func(t *testing.T) {
		t.Parallel()
		cfg := testValidationConfig()
		cfg.RefreshOnRead = false
		svc, m := newValidationService(t, cfg)
		m.results.EXPECT().GetReport(mock.Anything, lineItemRef("item-1")).Return(expired, nil).Once()

		_, err := svc.GetReport(ctxWithRC(), lineItemRef("item-1"))
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetReport() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		m.results.EXPECT().GetReport(mock.Anything, lineItemRef("item-1")).Return(nil, domain.ErrUnavailable).Once()

		_, err := svc.GetReport(ctxWithRC(), lineItemRef("item-1"))
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("GetReport() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestValidationService_ListSummaries(t *testing.T) {
	t.Parallel()

	t.Run("passes filter and clock", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		filter := validation.SummaryFilter{EntityType: validation.EntityOrder, Status: validation.StatusWarning}
		m.results.EXPECT().ListSummaries(mock.Anything, filter, testNow).
			Return([]validation.Summary{*orderSummary("order-1", validation.StatusWarning)}, nil).Once()

		got, err := svc.ListSummaries(ctxWithRC(), filter)
		if err != nil {
			t.Fatalf("ListSummaries() unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("ListSummaries() len = %d, want 1", len(got))
		}
	})

	tests := []struct {
		name   string
		filter validation.SummaryFilter
		field  string
	}{
		{name: "unknown entity type", filter: validation.SummaryFilter{EntityType: "invoice"}, field: "entity_type"},
		{name: "unknown status", filter: validation.SummaryFilter{Status: "fine"}, field: "status"},
		{name: "skipped is not an aggregate status", filter: validation.SummaryFilter{Status: validation.StatusSkipped}, field: "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newValidationService(t, testValidationConfig())

			_, err := svc.ListSummaries(ctxWithRC(), tt.filter)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ListSummaries() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("ListSummaries() fields = %v, want %s", verr.Fields, tt.field)
			}
		})
	}
}

func TestValidationService_BulkValidate(t *testing.T) {
	t.Parallel()

	t.Run("partial success keeps per-ref errors", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		m.expectLineItemRun(&validation.Summary{Status: validation.StatusError})
		m.jobs.EXPECT().GetDesignJob(mock.Anything, "job-gone").Return(nil, domain.ErrNotFound).Once()

		refs := []validation.EntityRef{
			lineItemRef("item-1"),
			designJobRef("job-gone"),
			{Type: "invoice", ID: "inv-1"},
		}
		got, err := svc.BulkValidate(ctxWithRC(), refs)
		if err != nil {
			t.Fatalf("BulkValidate() unexpected error: %v", err)
		}
		if len(got.Reports) != 1 {
			t.Errorf("BulkValidate() reports = %d, want 1", len(got.Reports))
		}
		if len(got.Errors) != 2 {
			t.Fatalf("BulkValidate() errors = %d, want 2", len(got.Errors))
		}
		if got.Errors[0].Ref != refs[1] || !errors.Is(got.Errors[0].Err, domain.ErrNotFound) {
			t.Errorf("BulkValidate() errors[0] = %+v, want not found for %s", got.Errors[0], refs[1])
		}
		if got.Errors[1].Ref != refs[2] || !errors.Is(got.Errors[1].Err, domain.ErrValidation) {
			t.Errorf("BulkValidate() errors[1] = %+v, want validation error for %s", got.Errors[1], refs[2])
		}
	})

	t.Run("siblings share one order fetch", func(t *testing.T) {
		t.Parallel()
		svc, m := newValidationService(t, testValidationConfig())
		first := validLineItem()
		second := validLineItem()
		second.ID = "item-2"
		o := validOrder()

		m.orders.EXPECT().GetLineItem(mock.Anything, "item-1").Return(&first, nil).Once()
		m.orders.EXPECT().GetLineItem(mock.Anything, "item-2").Return(&second, nil).Once()
		m.orders.EXPECT().GetOrder(mock.Anything, "order-1").Return(&o, nil).Once()
		m.results.EXPECT().GetSummary(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Times(2)
		m.results.EXPECT().SaveRun(mock.Anything, mock.Anything).Return(nil).Times(2)
		m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

		got, err := svc.BulkValidate(context.Background(), []validation.EntityRef{lineItemRef("item-1"), lineItemRef("item-2")})
		if err != nil {
			t.Fatalf("BulkValidate() unexpected error: %v", err)
		}
		if len(got.Reports) != 2 || len(got.Errors) != 0 {
			t.Errorf("BulkValidate() = %d reports, %d errors, want 2 and 0", len(got.Reports), len(got.Errors))
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		svc, _ := newValidationService(t, testValidationConfig())

		_, err := svc.BulkValidate(ctxWithRC(), nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("BulkValidate() error = %v, want ErrValidation", err)
		}
	})

	t.Run("oversized batch", func(t *testing.T) {
		t.Parallel()
		svc, _ := newValidationService(t, testValidationConfig())
		refs := []validation.EntityRef{orderRef("a"), orderRef("b"), orderRef("c"), orderRef("d")}

		_, err := svc.BulkValidate(ctxWithRC(), refs)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("BulkValidate() error = %v, want ErrValidation", err)
		}
	})
}

func TestValidationService_PurgeExpired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		removed int64
		err     error
	}{
		{name: "removes expired rows", removed: 7},
		{name: "store failure", err: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newValidationService(t, testValidationConfig())
			m.results.EXPECT().PurgeExpired(mock.Anything, testNow).Return(tt.removed, tt.err).Once()

			got, err := svc.PurgeExpired(context.Background())
			if !errors.Is(err, tt.err) {
				t.Fatalf("PurgeExpired() error = %v, want %v", err, tt.err)
			}
			if got != tt.removed {
				t.Errorf("PurgeExpired() = %d, want %d", got, tt.removed)
			}
		})
	}
}
