// Package report_repo provides PostgreSQL implementations for report
// and rollup-snapshot queries.
package report_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

// Compile-time check that RollupRepo implements rollup.SnapshotLoader.
var _ rollup.SnapshotLoader = (*RollupRepo)(nil)

// RollupRepo loads the full-scan snapshot the rollup recompute derives
// from. Three plain scans; no aggregation happens in SQL so the engine
// stays the single place the totals are defined.
type RollupRepo struct {
	txManager *postgres.TxManager
}

// NewRollupRepo creates a new rollup snapshot repository.
func NewRollupRepo(txManager *postgres.TxManager) *RollupRepo {
	return &RollupRepo{txManager: txManager}
}

// LoadRollupSnapshot loads every customer identity plus the rollup
// projection of every sale and return.
func (r *RollupRepo) LoadRollupSnapshot(ctx context.Context) (rollup.Snapshot, error) {
	var snap rollup.Snapshot
	querier := r.txManager.GetQuerier(ctx)

	var customerIDs []id.ID
	if err := pgxscan.Select(ctx, querier, &customerIDs, `
		SELECT id FROM cat_customers
	`); err != nil {
		return snap, fmt.Errorf("load customer ids: %w", err)
	}

	var sales []rollup.SaleRecord
	if err := pgxscan.Select(ctx, querier, &sales, `
		SELECT customer_id, amount, paid FROM doc_sales
	`); err != nil {
		return snap, fmt.Errorf("load sale records: %w", err)
	}

	var returns []rollup.ReturnRecord
	if err := pgxscan.Select(ctx, querier, &returns, `
		SELECT customer_id, amount FROM doc_returns
	`); err != nil {
		return snap, fmt.Errorf("load return records: %w", err)
	}

	snap.Customers = customerIDs
	snap.Sales = sales
	snap.Returns = returns
	return snap, nil
}
