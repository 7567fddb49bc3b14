package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"trabaho-board/internal/domain"
)

const schemaVersion = 1

func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin migrate")
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return errors.Wrap(err, "read user_version")
	}
	if v >= schemaVersion {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
  position INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  type TEXT NOT NULL,
  salary TEXT NOT NULL DEFAULT '',
  posted TEXT NOT NULL DEFAULT '',
  posted_at TEXT NOT NULL DEFAULT '',
  remote INTEGER NOT NULL DEFAULT 0,
  skills TEXT NOT NULL DEFAULT '[]',
  description TEXT NOT NULL DEFAULT '',
  apply_link TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return errors.Wrap(err, "create jobs")
	}

	if _, err := tx.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS idx_jobs_type_location
ON jobs(type, location);
`); err != nil {
		return errors.Wrap(err, "create jobs index")
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return errors.Wrap(err, "set user_version")
	}

	return tx.Commit()
}

// ReplaceJobs swaps the whole catalogue for jobs, keeping their order.
func ReplaceJobs(ctx context.Context, db *sql.DB, jobs []domain.Job) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin replace")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs;`); err != nil {
		return 0, errors.Wrap(err, "clear jobs")
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO jobs(position, title, company, location, type, salary, posted, posted_at, remote, skills, description, apply_link)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?);`)
	if err != nil {
		return 0, errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for i, j := range jobs {
		skills := j.Skills
		if skills == nil {
			skills = []string{}
		}
		skillsB, _ := json.Marshal(skills)

		postedAt := ""
		if j.PostedAt != nil && !j.PostedAt.IsZero() {
			postedAt = j.PostedAt.UTC().Format(time.RFC3339)
		}

		if _, err := stmt.ExecContext(ctx,
			i+1, j.Title, j.Company, j.Location, j.Type, j.Salary, j.Posted, postedAt,
			j.Remote, string(skillsB), j.Description, j.ApplyLink,
		); err != nil {
			return 0, errors.Wrapf(err, "insert job %d", i+1)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit replace")
	}
	return len(jobs), nil
}

// ListJobs returns the catalogue in its stored order.
func ListJobs(ctx context.Context, db *sql.DB) ([]domain.Job, error) {
	rows, err := db.QueryContext(ctx, `
SELECT title, company, location, type, salary, posted, posted_at, remote, skills, description, apply_link
FROM jobs
ORDER BY position ASC;`)
	if err != nil {
		return nil, errors.Wrap(err, "query jobs")
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		var skillsJSON, postedAt string
		if err := rows.Scan(
			&j.Title,
			&j.Company,
			&j.Location,
			&j.Type,
			&j.Salary,
			&j.Posted,
			&postedAt,
			&j.Remote,
			&skillsJSON,
			&j.Description,
			&j.ApplyLink,
		); err != nil {
			return nil, errors.Wrap(err, "scan job")
		}
		_ = json.Unmarshal([]byte(skillsJSON), &j.Skills)
		if postedAt != "" {
			if t, err := time.Parse(time.RFC3339, postedAt); err == nil {
				j.PostedAt = &t
			}
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate jobs")
	}
	return out, nil
}
