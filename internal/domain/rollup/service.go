package rollup

import (
	"context"
	"fmt"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// SnapshotLoader loads the full record sets the recompute derives from.
type SnapshotLoader interface {
	LoadRollupSnapshot(ctx context.Context) (Snapshot, error)
}

// Persister writes the derived totals onto a customer. Only the rollup
// service calls it; nothing else may touch the derived fields.
type Persister interface {
	PersistRollup(ctx context.Context, customerID id.ID, totals Totals) error
}

// Service loads a snapshot, computes every customer's totals and
// persists them. Callers never wait on it for request handling: the
// worker runs it off outbox events, so a persistence failure is logged
// and retried with the event, never surfaced to the original request.
type Service struct {
	loader    SnapshotLoader
	persister Persister
}

// NewService creates a new rollup service.
func NewService(loader SnapshotLoader, persister Persister) *Service {
	return &Service{
		loader:    loader,
		persister: persister,
	}
}

// Recompute performs a full recompute-and-persist cycle.
// Persist failures for individual customers are logged and counted but
// do not stop the cycle; the first failure is returned at the end so
// the caller can retry the whole (idempotent) run.
func (s *Service) Recompute(ctx context.Context) error {
	snap, err := s.loader.LoadRollupSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load rollup snapshot: %w", err)
	}

	totals := Compute(snap)

	var firstErr error
	failed := 0
	for _, customerID := range snap.Customers {
		if err := s.persister.PersistRollup(ctx, customerID, totals[customerID]); err != nil {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("persist rollup for %s: %w", customerID, err)
			}
			logger.Error(ctx, "rollup persist failed",
				"customer_id", customerID,
				"error", err,
			)
		}
	}

	logger.Info(ctx, "rollup recomputed",
		"customers", len(snap.Customers),
		"sales", len(snap.Sales),
		"returns", len(snap.Returns),
		"failed", failed,
	)

	return firstErr
}
