package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	appctx "github.com/suttonsam862/WholesaleOS4.0-sub009/internal/app/context"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ctxWithRC returns a context carrying a fresh RequestContext, as the
// middleware does for every HTTP request.
func ctxWithRC() context.Context {
	ctx := context.Background()
	return appctx.WithRequestContext(ctx, appctx.New(ctx))
}

func timePtr(t time.Time) *time.Time { return &t }

func validOrganization() organization.Organization {
	return organization.Organization{
		ID:        "org-1",
		Name:      "Lincoln High Athletics",
		Email:     "athletics@lincoln.example",
		City:      "Omaha",
		State:     "NE",
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func validContact() organization.Contact {
	return organization.Contact{
		ID:             "contact-1",
		OrganizationID: "org-1",
		Name:           "Dana Reyes",
		Email:          "dana@lincoln.example",
		Role:           "Athletic Director",
	}
}

func validOrder() order.Order {
	return order.Order{
		ID:             "order-1",
		OrderNumber:    "SO-1001",
		OrganizationID: "org-1",
		ContactID:      "contact-1",
		Status:         order.StatusNew,
		Priority:       order.PriorityNormal,
		OrderDate:      testNow.AddDate(0, 0, -7),
		DueDate:        timePtr(testNow.AddDate(0, 0, 21)),
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}

func validLineItem() order.LineItem {
	return order.LineItem{
		ID:          "item-1",
		OrderID:     "order-1",
		Description: "Warmup hoodie",
		Color:       "navy",
		Quantity:    24,
		UnitPrice:   decimal.RequireFromString("18.50"),
		Sizes:       order.SizeBreakdown{order.SizeM: 12, order.SizeL: 12},
	}
}

func validDesignJob() designjob.DesignJob {
	return designjob.DesignJob{
		ID:               "job-1",
		JobNumber:        "DJ-1001",
		OrderID:          "order-1",
		Brief:            "Two-color front crest",
		Status:           designjob.StatusAssigned,
		AssignedDesigner: "sam",
		Deadline:         timePtr(testNow.AddDate(0, 0, 7)),
	}
}

func orderSummary(id string, status validation.Status) *validation.Summary {
	return &validation.Summary{
		EntityType: validation.EntityOrder,
		EntityID:   id,
		RunID:      "run-prev",
		Status:     status,
		LastRunAt:  testNow.Add(-time.Hour),
		ExpiresAt:  testNow.Add(time.Hour),
	}
}
