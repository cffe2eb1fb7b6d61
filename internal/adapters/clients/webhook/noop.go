package webhook

import (
	"context"
	"log/slog"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

var _ ports.ValidationNotifier = (*NoopNotifier)(nil)

// NoopNotifier stands in when webhooks are disabled. It logs each event at
// debug level and drops it.
type NoopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier creates a NoopNotifier.
func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NoopNotifier{logger: logger}
}

// NotifyStatusChanged implements ports.ValidationNotifier.
func (n *NoopNotifier) NotifyStatusChanged(ctx context.Context, ev validation.StatusChanged) error {
	n.logger.DebugContext(ctx, "webhook disabled, dropping event",
		slog.String("entity_type", ev.EntityType.String()),
		slog.String("entity_id", ev.EntityID),
		slog.String("status", ev.Current.String()),
	)
	return nil
}
