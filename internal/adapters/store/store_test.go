package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/store"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/config"
)

var baseTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// steppingClock advances one second per call so stamps are distinct.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	clock := &steppingClock{now: baseTime}
	s, err := store.Open(context.Background(), config.DatabaseConfig{
		Driver:      store.DriverSQLite,
		DSN:         ":memory:",
		AutoMigrate: true,
	}, store.WithClock(clock.Now))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newOrder(number string) *order.Order {
	return &order.Order{
		OrderNumber: number,
		Status:      order.StatusNew,
		Priority:    order.PriorityNormal,
		OrderDate:   baseTime,
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := store.Open(context.Background(), config.DatabaseConfig{Driver: "mysql", DSN: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestOpen_MigrateIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Migrate(context.Background()))
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	assert.Equal(t, "database", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	require.NoError(t, s.Close())
	require.Error(t, s.HealthCheck(context.Background()))
}

func TestOrganizations(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	org, err := s.CreateOrganization(ctx, &organization.Organization{Name: "Westview High", City: "Austin"})
	require.NoError(t, err)
	require.NotEmpty(t, org.ID)
	assert.Equal(t, baseTime.Add(time.Second), org.CreatedAt)

	org.Email = "athletics@westview.edu"
	updated, err := s.UpdateOrganization(ctx, org)
	require.NoError(t, err)
	assert.Equal(t, "athletics@westview.edu", updated.Email)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = s.CreateOrganization(ctx, &organization.Organization{Name: "Alder Club"})
	require.NoError(t, err)

	list, err := s.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alder Club", list[0].Name)

	_, err = s.GetOrganization(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.UpdateOrganization(ctx, &organization.Organization{ID: "missing", Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContacts(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	org, err := s.CreateOrganization(ctx, &organization.Organization{Name: "Westview High"})
	require.NoError(t, err)

	c, err := s.CreateContact(ctx, &organization.Contact{OrganizationID: org.ID, Name: "Coach Diaz", Role: "coach"})
	require.NoError(t, err)

	got, err := s.GetContact(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "coach", got.Role)

	list, err := s.ListContacts(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	empty, err := s.ListContacts(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOrders_CreateUpdateGet(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	due := baseTime.AddDate(0, 1, 0)
	in := newOrder("WO-1001")
	in.DueDate = &due

	created, err := s.CreateOrder(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "WO-1001", created.OrderNumber)
	require.NotNil(t, created.DueDate)
	assert.True(t, created.DueDate.Equal(due))

	created.Status = order.StatusInvoiced
	created.DueDate = nil
	updated, err := s.UpdateOrder(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, order.StatusInvoiced, updated.Status)
	assert.Nil(t, updated.DueDate)

	_, err = s.CreateOrder(ctx, newOrder("WO-1001"))
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.GetOrder(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_Filter(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	a := newOrder("WO-1")
	a.OrganizationID = "org-a"
	b := newOrder("WO-2")
	b.Status = order.StatusProduction
	b.OrganizationID = "org-a"
	c := newOrder("WO-3")
	c.OrganizationID = "org-b"
	for _, o := range []*order.Order{a, b, c} {
		_, err := s.CreateOrder(ctx, o)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter order.Filter
		want   []string
	}{
		{name: "all newest first", filter: order.Filter{}, want: []string{"WO-3", "WO-2", "WO-1"}},
		{name: "by status", filter: order.Filter{Status: order.StatusProduction}, want: []string{"WO-2"}},
		{name: "by organization", filter: order.Filter{OrganizationID: "org-a"}, want: []string{"WO-2", "WO-1"}},
		{name: "both", filter: order.Filter{Status: order.StatusNew, OrganizationID: "org-b"}, want: []string{"WO-3"}},
		{name: "no match", filter: order.Filter{Status: order.StatusShipped}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := s.ListOrders(ctx, tt.filter)
			require.NoError(t, err)
			got := make([]string, len(list))
			for i := range list {
				got[i] = list[i].OrderNumber
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineItems(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, newOrder("WO-1"))
	require.NoError(t, err)

	first, err := s.CreateLineItem(ctx, &order.LineItem{
		OrderID:     o.ID,
		Description: "Home jersey",
		Quantity:    24,
		UnitPrice:   decimal.RequireFromString("18.75"),
		Sizes:       order.SizeBreakdown{order.SizeM: 12, order.SizeL: 12},
	})
	require.NoError(t, err)
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("18.75")))
	assert.Equal(t, 24, first.Sizes.Total())

	second, err := s.CreateLineItem(ctx, &order.LineItem{OrderID: o.ID, Quantity: 6, UnitPrice: decimal.Zero})
	require.NoError(t, err)
	assert.Nil(t, second.Sizes)

	second.Quantity = 12
	second.Sizes = order.SizeBreakdown{order.SizeXL: 12}
	updated, err := s.UpdateLineItem(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Quantity)
	assert.Equal(t, 12, updated.Sizes[order.SizeXL])

	items, err := s.ListLineItems(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID, "line items come back in creation order")

	require.NoError(t, s.DeleteLineItem(ctx, first.ID))
	require.ErrorIs(t, s.DeleteLineItem(ctx, first.ID), domain.ErrNotFound)

	_, err = s.GetLineItem(ctx, first.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManufacturing_Upsert(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, newOrder("WO-1"))
	require.NoError(t, err)

	_, err = s.GetManufacturing(ctx, o.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	start := baseTime.AddDate(0, 0, 3)
	rec, err := s.UpsertManufacturing(ctx, &manufacturing.Record{
		OrderID: o.ID, Status: manufacturing.StatusPending, ProductionStart: &start,
	})
	require.NoError(t, err)

	again, err := s.UpsertManufacturing(ctx, &manufacturing.Record{
		OrderID: o.ID, Status: manufacturing.StatusInProduction, Notes: "screens burned",
	})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID, "upsert keeps the record identity")
	assert.Equal(t, rec.CreatedAt, again.CreatedAt)
	assert.Equal(t, manufacturing.StatusInProduction, again.Status)
	assert.Nil(t, again.ProductionStart)
}

func TestDeleteOrder_Cascades(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, newOrder("WO-1"))
	require.NoError(t, err)
	item, err := s.CreateLineItem(ctx, &order.LineItem{OrderID: o.ID, Quantity: 12, UnitPrice: decimal.NewFromInt(5)})
	require.NoError(t, err)
	_, err = s.UpsertManufacturing(ctx, &manufacturing.Record{OrderID: o.ID, Status: manufacturing.StatusPending})
	require.NoError(t, err)
	job, err := s.CreateDesignJob(ctx, &designjob.DesignJob{JobNumber: "DJ-1", OrderID: o.ID, Status: designjob.StatusPending})
	require.NoError(t, err)

	require.NoError(t, s.SaveRun(ctx, sampleReport(orderRef(o.ID), baseTime)))
	require.NoError(t, s.SaveRun(ctx, sampleReport(lineItemRef(item.ID), baseTime)))

	require.NoError(t, s.DeleteOrder(ctx, o.ID))

	_, err = s.GetOrder(ctx, o.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetLineItem(ctx, item.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetManufacturing(ctx, o.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetReport(ctx, orderRef(o.ID))
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetReport(ctx, lineItemRef(item.ID))
	require.ErrorIs(t, err, domain.ErrNotFound)

	unlinked, err := s.GetDesignJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, unlinked.OrderID)

	require.ErrorIs(t, s.DeleteOrder(ctx, o.ID), domain.ErrNotFound)
}

func TestDesignJobs(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	deadline := baseTime.AddDate(0, 0, 10)
	job, err := s.CreateDesignJob(ctx, &designjob.DesignJob{
		JobNumber: "DJ-1", OrderID: "ord-1", Brief: "Two-color crest", Status: designjob.StatusPending, Deadline: &deadline,
	})
	require.NoError(t, err)
	require.NotNil(t, job.Deadline)

	job.Status = designjob.StatusAssigned
	job.AssignedDesigner = "priya"
	updated, err := s.UpdateDesignJob(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, "priya", updated.AssignedDesigner)

	_, err = s.CreateDesignJob(ctx, &designjob.DesignJob{JobNumber: "DJ-2", Status: designjob.StatusReview})
	require.NoError(t, err)

	byOrder, err := s.ListDesignJobs(ctx, designjob.Filter{OrderID: "ord-1"})
	require.NoError(t, err)
	require.Len(t, byOrder, 1)

	byStatus, err := s.ListDesignJobs(ctx, designjob.Filter{Status: designjob.StatusReview})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "DJ-2", byStatus[0].JobNumber)

	_, err = s.CreateDesignJob(ctx, &designjob.DesignJob{JobNumber: "DJ-1", Status: designjob.StatusPending})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.UpdateDesignJob(ctx, &designjob.DesignJob{ID: "missing", JobNumber: "DJ-9", Status: designjob.StatusPending})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
