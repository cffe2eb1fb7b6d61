package app

import (
	"context"
	"fmt"
	"log/slog"

	appctx "github.com/suttonsam862/WholesaleOS4.0-sub009/internal/app/context"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// Compile-time check that revalidateAction implements domain.Action.
var _ domain.Action = (*revalidateAction)(nil)

// revalidateAction re-runs the check catalog for one entity after a write.
type revalidateAction struct {
	validator ports.ValidationService
	ref       validation.EntityRef
}

func (a *revalidateAction) Execute(ctx context.Context) error {
	_, err := a.validator.Validate(ctx, a.ref)
	return err
}

// Rollback is a no-op: a validation run only replaces advisory results.
func (a *revalidateAction) Rollback(context.Context) error { return nil }

func (a *revalidateAction) Description() string {
	return fmt.Sprintf("revalidate %s", a.ref)
}

// revalidate runs the advisory checks for refs after a committed write.
// Failures are logged and swallowed; they never fail the write.
func revalidate(ctx context.Context, logger *slog.Logger, validator ports.ValidationService, refs ...validation.EntityRef) {
	if validator == nil {
		return
	}

	rc := appctx.Ensure(ctx)
	for _, ref := range refs {
		action := &revalidateAction{validator: validator, ref: ref}
		if err := rc.Execute(action); err != nil {
			logger.WarnContext(ctx, "advisory revalidation failed",
				slog.String("operation", action.Description()),
				slog.String("entity", ref.String()),
				slog.Any("error", err),
			)
		}
	}
}

// forgetOrder drops a memoized order after it has been written.
func forgetOrder(ctx context.Context, id string) {
	if rc := appctx.FromContext(ctx); rc != nil {
		rc.Forget(orderCacheKey(id))
	}
}

func orderRef(id string) validation.EntityRef {
	return validation.EntityRef{Type: validation.EntityOrder, ID: id}
}

func designJobRef(id string) validation.EntityRef {
	return validation.EntityRef{Type: validation.EntityDesignJob, ID: id}
}
