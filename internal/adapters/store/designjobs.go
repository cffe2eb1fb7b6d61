package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
)

const designJobColumns = `id, job_number, order_id, brief, status, assigned_designer, deadline, created_at, updated_at`

// ListDesignJobs returns design jobs matching filter, newest first.
func (s *Store) ListDesignJobs(ctx context.Context, filter designjob.Filter) ([]designjob.DesignJob, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.OrderID != "" {
		where = append(where, "order_id = ?")
		args = append(args, filter.OrderID)
	}

	query := `SELECT ` + designJobColumns + ` FROM design_jobs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("listing design jobs: %w", err)
	}
	defer rows.Close()

	out := []designjob.DesignJob{}
	for rows.Next() {
		j, err := scanDesignJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning design job: %w", err)
		}
		out = append(out, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing design jobs: %w", err)
	}
	return out, nil
}

// GetDesignJob returns one design job by ID.
func (s *Store) GetDesignJob(ctx context.Context, id string) (*designjob.DesignJob, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+designJobColumns+` FROM design_jobs WHERE id = ?`), id)
	j, err := scanDesignJob(row)
	if err != nil {
		return nil, mapError(err, "design job "+id)
	}
	return j, nil
}

// CreateDesignJob inserts job with a fresh ID and timestamps.
func (s *Store) CreateDesignJob(ctx context.Context, job *designjob.DesignJob) (*designjob.DesignJob, error) {
	now := s.now()
	id := newID()

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO design_jobs (`+designJobColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		id, job.JobNumber, job.OrderID, job.Brief, string(job.Status), job.AssignedDesigner,
		nullMillis(job.Deadline), toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "creating design job "+job.JobNumber)
	}
	return s.GetDesignJob(ctx, id)
}

// UpdateDesignJob overwrites the mutable fields of job.
func (s *Store) UpdateDesignJob(ctx context.Context, job *designjob.DesignJob) (*designjob.DesignJob, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE design_jobs
		SET job_number = ?, order_id = ?, brief = ?, status = ?, assigned_designer = ?,
			deadline = ?, updated_at = ?
		WHERE id = ?`),
		job.JobNumber, job.OrderID, job.Brief, string(job.Status), job.AssignedDesigner,
		nullMillis(job.Deadline), toMillis(s.now()), job.ID,
	)
	if err != nil {
		return nil, mapError(err, "updating design job "+job.ID)
	}
	if err := requireAffected(res, "design job "+job.ID); err != nil {
		return nil, err
	}
	return s.GetDesignJob(ctx, job.ID)
}

func scanDesignJob(sc rowScanner) (*designjob.DesignJob, error) {
	var (
		j                designjob.DesignJob
		status           string
		deadline         sql.NullInt64
		created, updated int64
	)
	if err := sc.Scan(&j.ID, &j.JobNumber, &j.OrderID, &j.Brief, &status, &j.AssignedDesigner,
		&deadline, &created, &updated); err != nil {
		return nil, err
	}
	j.Status = designjob.Status(status)
	j.Deadline = timePtr(deadline)
	j.CreatedAt = fromMillis(created)
	j.UpdatedAt = fromMillis(updated)
	return &j, nil
}
