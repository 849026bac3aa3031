package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the slice of pgx shared by *pgxpool.Pool, *pgxpool.Conn and
// pgx.Tx that the repos need.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Sessions hands out request-scoped database sessions. Each GraphQL request
// acquires exactly one connection at the start and releases it at the end;
// nothing is shared between concurrent requests.
type Sessions struct {
	pool *pgxpool.Pool
}

func NewSessions(pool *pgxpool.Pool) *Sessions {
	return &Sessions{pool: pool}
}

func (s *Sessions) Acquire(ctx context.Context) (*Session, error) {
	conn, err := s.pool.Acquire(ctx)

	if err != nil {
		return nil, err
	}

	return &Session{conn: conn}, nil
}

type Session struct {
	conn *pgxpool.Conn
}

func (s *Session) Release() {
	s.conn.Release()
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}

// db picks the request session when one is attached to the context and falls
// back to the shared pool otherwise (tests, one-off tools).
func db(ctx context.Context, pool *pgxpool.Pool) querier {
	if s, ok := SessionFrom(ctx); ok {
		return s.conn
	}
	return pool
}
