package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumehub/resumehub/internal/domain/user"
	"github.com/resumehub/resumehub/internal/observability"
)

const userColumns = `user_id, email, full_name, password_hash, created_at, updated_at`

type UsersRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{pool: pool, prom: prom}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User

	err := r.observe("users.list", func() error {
		rows, err := db(ctx, r.pool).Query(ctx, `SELECT `+userColumns+` FROM users`)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u user.User

			err = rows.Scan(&u.UserID, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)

			if err != nil {
				return err
			}

			out = append(out, u)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	var u user.User

	err := r.observe("users.get_by_id", func() error {
		return db(ctx, r.pool).QueryRow(
			ctx,
			`SELECT `+userColumns+` FROM users WHERE user_id = $1`,
			id,
		).Scan(&u.UserID, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db(ctx, r.pool).Begin(ctx)
}

func (r *UsersRepo) CreateTx(ctx context.Context, tx pgx.Tx, req user.CreateUserRequest) (user.User, error) {
	u := user.NewFromCreateRequest(req)

	err := r.observe("users.create", func() error {
		_, err := tx.Exec(ctx,
			`INSERT INTO users(user_id, email, full_name, password_hash, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6)`,
			u.UserID, u.Email, u.FullName, u.PasswordHash, u.CreatedAt, u.UpdatedAt)

		return err
	})

	if err != nil {
		return user.User{}, err
	}

	return u, nil
}
