package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

const resultColumns = `id, run_id, entity_type, entity_id, check_name, field, status, message, created_at, expires_at`

const summaryColumns = `entity_type, entity_id, run_id, status, pass_count, warning_count, error_count,
	skipped_count, last_run_at, expires_at`

// SaveRun replaces the entity's results and upserts its summary in one
// transaction.
func (s *Store) SaveRun(ctx context.Context, report *validation.Report) error {
	sum := report.Summary
	kind := string(sum.EntityType)

	return s.execTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, s.rebind(
			`DELETE FROM validation_results WHERE entity_type = ? AND entity_id = ?`),
			kind, sum.EntityID); err != nil {
			return fmt.Errorf("clearing results for %s: %w", sum.Ref(), err)
		}

		// position keeps the catalog order of the run for reads.
		insert := s.rebind(`INSERT INTO validation_results (` + resultColumns + `, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		for i := range report.Results {
			r := &report.Results[i]
			if _, err := q.ExecContext(ctx, insert,
				r.ID, r.RunID, string(r.EntityType), r.EntityID, r.Check, r.Field, string(r.Status), r.Message,
				toMillis(r.CreatedAt), toMillis(r.ExpiresAt), i,
			); err != nil {
				return fmt.Errorf("inserting result %s for %s: %w", r.Check, sum.Ref(), err)
			}
		}

		if _, err := q.ExecContext(ctx, s.rebind(`
			INSERT INTO validation_summaries (`+summaryColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (entity_type, entity_id) DO UPDATE SET
				run_id = excluded.run_id,
				status = excluded.status,
				pass_count = excluded.pass_count,
				warning_count = excluded.warning_count,
				error_count = excluded.error_count,
				skipped_count = excluded.skipped_count,
				last_run_at = excluded.last_run_at,
				expires_at = excluded.expires_at`),
			kind, sum.EntityID, sum.RunID, string(sum.Status),
			sum.PassCount, sum.WarningCount, sum.ErrorCount, sum.SkippedCount,
			toMillis(sum.LastRunAt), toMillis(sum.ExpiresAt),
		); err != nil {
			return fmt.Errorf("saving summary for %s: %w", sum.Ref(), err)
		}
		return nil
	})
}

// GetSummary returns the latest summary for ref.
func (s *Store) GetSummary(ctx context.Context, ref validation.EntityRef) (*validation.Summary, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT `+summaryColumns+` FROM validation_summaries
		WHERE entity_type = ? AND entity_id = ?`), string(ref.Type), ref.ID)
	sum, err := scanSummary(row)
	if err != nil {
		return nil, mapError(err, "validation summary for "+ref.String())
	}
	return sum, nil
}

// GetReport returns the latest summary for ref and the results of that run
// in the order the checks ran. Both reads share a transaction so they see
// the same run.
func (s *Store) GetReport(ctx context.Context, ref validation.EntityRef) (*validation.Report, error) {
	var report *validation.Report

	err := s.execTx(ctx, func(q querier) error {
		row := q.QueryRowContext(ctx, s.rebind(`
			SELECT `+summaryColumns+` FROM validation_summaries
			WHERE entity_type = ? AND entity_id = ?`), string(ref.Type), ref.ID)
		sum, err := scanSummary(row)
		if err != nil {
			return mapError(err, "validation report for "+ref.String())
		}

		rows, err := q.QueryContext(ctx, s.rebind(`
			SELECT `+resultColumns+` FROM validation_results
			WHERE entity_type = ? AND entity_id = ? AND run_id = ?
			ORDER BY position, id`), string(ref.Type), ref.ID, sum.RunID)
		if err != nil {
			return fmt.Errorf("loading results for %s: %w", ref, err)
		}
		defer rows.Close()

		results := []validation.Result{}
		for rows.Next() {
			r, err := scanResult(rows)
			if err != nil {
				return fmt.Errorf("scanning result for %s: %w", ref, err)
			}
			results = append(results, *r)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("loading results for %s: %w", ref, err)
		}

		report = &validation.Report{Summary: *sum, Results: results}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListSummaries returns summaries matching filter, most recent run first.
func (s *Store) ListSummaries(ctx context.Context, filter validation.SummaryFilter, now time.Time) ([]validation.Summary, error) {
	var (
		where []string
		args  []any
	)
	if filter.EntityType != "" {
		where = append(where, "entity_type = ?")
		args = append(args, string(filter.EntityType))
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if !filter.IncludeExpired {
		where = append(where, "expires_at > ?")
		args = append(args, toMillis(now))
	}

	query := `SELECT ` + summaryColumns + ` FROM validation_summaries`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY last_run_at DESC, entity_type, entity_id`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("listing validation summaries: %w", err)
	}
	defer rows.Close()

	out := []validation.Summary{}
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning validation summary: %w", err)
		}
		out = append(out, *sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing validation summaries: %w", err)
	}
	return out, nil
}

// PurgeExpired deletes every result and summary whose time box closed at or
// before now, and returns the number of result rows removed.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	cutoff := toMillis(now)

	err := s.execTx(ctx, func(q querier) error {
		res, err := q.ExecContext(ctx, s.rebind(`DELETE FROM validation_results WHERE expires_at <= ?`), cutoff)
		if err != nil {
			return fmt.Errorf("purging validation results: %w", err)
		}
		if removed, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("purging validation results: %w", err)
		}

		if _, err := q.ExecContext(ctx, s.rebind(`DELETE FROM validation_summaries WHERE expires_at <= ?`), cutoff); err != nil {
			return fmt.Errorf("purging validation summaries: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func scanSummary(sc rowScanner) (*validation.Summary, error) {
	var (
		sum           validation.Summary
		kind, status  string
		lastRun, till int64
	)
	if err := sc.Scan(&kind, &sum.EntityID, &sum.RunID, &status,
		&sum.PassCount, &sum.WarningCount, &sum.ErrorCount, &sum.SkippedCount,
		&lastRun, &till); err != nil {
		return nil, err
	}
	sum.EntityType = validation.EntityType(kind)
	sum.Status = validation.Status(status)
	sum.LastRunAt = fromMillis(lastRun)
	sum.ExpiresAt = fromMillis(till)
	return &sum, nil
}

func scanResult(sc rowScanner) (*validation.Result, error) {
	var (
		r                validation.Result
		kind, status     string
		created, expires int64
	)
	if err := sc.Scan(&r.ID, &r.RunID, &kind, &r.EntityID, &r.Check, &r.Field, &status, &r.Message,
		&created, &expires); err != nil {
		return nil, err
	}
	r.EntityType = validation.EntityType(kind)
	r.Status = validation.Status(status)
	r.CreatedAt = fromMillis(created)
	r.ExpiresAt = fromMillis(expires)
	return &r, nil
}
