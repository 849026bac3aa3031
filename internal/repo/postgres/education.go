package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumehub/resumehub/internal/domain/education"
	"github.com/resumehub/resumehub/internal/observability"
)

const educationColumns = `education_id, user_id, institution_name, location, date_started, date_finished, major, minor, gpa::float8, details, created_at, updated_at`

type EducationRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewEducationRepo(pool *pgxpool.Pool, prom *observability.Prom) *EducationRepo {
	return &EducationRepo{pool: pool, prom: prom}
}

func (r *EducationRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

// List returns every education row, narrowed to one owner when userID is set.
func (r *EducationRepo) List(ctx context.Context, userID *string) ([]education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education`
	var args []any

	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}

	var out []education.Education

	err := r.observe("education.list", func() error {
		rows, err := db(ctx, r.pool).Query(ctx, query, args...)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e education.Education

			err = scanEducation(rows, &e)

			if err != nil {
				return err
			}

			out = append(out, e)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

// ListByUser backs the nested User.education field. It is called once per
// parent User instance in a result set; the repeated single-owner queries are
// the intended access pattern, not an accident.
func (r *EducationRepo) ListByUser(ctx context.Context, userID string) ([]education.Education, error) {
	return r.List(ctx, &userID)
}

func (r *EducationRepo) GetByID(ctx context.Context, id string) (education.Education, error) {
	var e education.Education

	err := r.observe("education.get_by_id", func() error {
		row := db(ctx, r.pool).QueryRow(
			ctx,
			`SELECT `+educationColumns+` FROM education WHERE education_id = $1`,
			id,
		)

		return scanEducation(row, &e)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return education.Education{}, education.ErrNotFound
		}

		return education.Education{}, err
	}

	return e, nil
}

func (r *EducationRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db(ctx, r.pool).Begin(ctx)
}

func (r *EducationRepo) CreateTx(ctx context.Context, tx pgx.Tx, req education.CreateEducationRequest) (education.Education, error) {
	e := education.NewFromCreateRequest(req)

	err := r.observe("education.create", func() error {
		_, err := tx.Exec(ctx,
			`INSERT INTO education(education_id, user_id, institution_name, location, date_started, date_finished, major, minor, gpa, details, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			e.EducationID, e.UserID, e.InstitutionName, e.Location, e.DateStarted, e.DateFinished,
			e.Major, e.Minor, gpaNumeric(e.GPA), detailsJSON(e.Details), e.CreatedAt, e.UpdatedAt)

		return err
	})

	if err != nil {
		return education.Education{}, err
	}

	return e, nil
}

func scanEducation(row pgx.Row, e *education.Education) error {
	return row.Scan(
		&e.EducationID,
		&e.UserID,
		&e.InstitutionName,
		&e.Location,
		&e.DateStarted,
		&e.DateFinished,
		&e.Major,
		&e.Minor,
		&e.GPA,
		&e.Details,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// gpaNumeric converts a grade to its decimal string so NUMERIC(3,2) parses
// the exact digits instead of a binary-float approximation.
func gpaNumeric(gpa *float64) any {
	if gpa == nil {
		return nil
	}
	return strconv.FormatFloat(*gpa, 'f', -1, 64)
}

// detailsJSON passes raw JSON through as text for the jsonb column; empty
// means NULL.
func detailsJSON(d []byte) any {
	if len(d) == 0 {
		return nil
	}
	return string(d)
}
