package domain

import "context"

// Action is a side effect run on behalf of a request, such as re-running
// advisory validation after an order changes. appctx.RequestContext.Execute
// runs actions with the request's context.
type Action interface {
	// Execute performs the action and should respect ctx cancellation.
	Execute(ctx context.Context) error
	// Rollback undoes a successful Execute. Actions whose effects are
	// advisory, like a validation run, may implement it as a no-op.
	Rollback(ctx context.Context) error
	// Description names the action in logs, e.g. "revalidate order 7f1c...".
	Description() string
}
