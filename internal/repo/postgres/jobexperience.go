package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumehub/resumehub/internal/domain/jobexperience"
	"github.com/resumehub/resumehub/internal/observability"
)

const jobExperienceColumns = `job_id, user_id, company_name, job_title, location, date_started, date_left, details, created_at, updated_at`

type JobExperienceRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewJobExperienceRepo(pool *pgxpool.Pool, prom *observability.Prom) *JobExperienceRepo {
	return &JobExperienceRepo{pool: pool, prom: prom}
}

func (r *JobExperienceRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *JobExperienceRepo) List(ctx context.Context, userID *string) ([]jobexperience.JobExperience, error) {
	query := `SELECT ` + jobExperienceColumns + ` FROM job_experience`
	var args []any

	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}

	var out []jobexperience.JobExperience

	err := r.observe("job_experience.list", func() error {
		rows, err := db(ctx, r.pool).Query(ctx, query, args...)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var j jobexperience.JobExperience

			err = scanJobExperience(rows, &j)

			if err != nil {
				return err
			}

			out = append(out, j)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

// ListByUser backs the nested User.jobExperience field, one query per parent
// User instance.
func (r *JobExperienceRepo) ListByUser(ctx context.Context, userID string) ([]jobexperience.JobExperience, error) {
	return r.List(ctx, &userID)
}

func (r *JobExperienceRepo) GetByID(ctx context.Context, id string) (jobexperience.JobExperience, error) {
	var j jobexperience.JobExperience

	err := r.observe("job_experience.get_by_id", func() error {
		row := db(ctx, r.pool).QueryRow(
			ctx,
			`SELECT `+jobExperienceColumns+` FROM job_experience WHERE job_id = $1`,
			id,
		)

		return scanJobExperience(row, &j)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobexperience.JobExperience{}, jobexperience.ErrNotFound
		}

		return jobexperience.JobExperience{}, err
	}

	return j, nil
}

func (r *JobExperienceRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db(ctx, r.pool).Begin(ctx)
}

func (r *JobExperienceRepo) CreateTx(ctx context.Context, tx pgx.Tx, req jobexperience.CreateJobExperienceRequest) (jobexperience.JobExperience, error) {
	j := jobexperience.NewFromCreateRequest(req)

	err := r.observe("job_experience.create", func() error {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_experience(job_id, user_id, company_name, job_title, location, date_started, date_left, details, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			j.JobID, j.UserID, j.CompanyName, j.JobTitle, j.Location, j.DateStarted, j.DateLeft,
			detailsJSON(j.Details), j.CreatedAt, j.UpdatedAt)

		return err
	})

	if err != nil {
		return jobexperience.JobExperience{}, err
	}

	return j, nil
}

func scanJobExperience(row pgx.Row, j *jobexperience.JobExperience) error {
	return row.Scan(
		&j.JobID,
		&j.UserID,
		&j.CompanyName,
		&j.JobTitle,
		&j.Location,
		&j.DateStarted,
		&j.DateLeft,
		&j.Details,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
}
