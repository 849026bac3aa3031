package graph

import (
	"context"
	"errors"
	"log/slog"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/jackc/pgx/v5"

	"github.com/resumehub/resumehub/internal/domain/education"
	"github.com/resumehub/resumehub/internal/domain/jobexperience"
	"github.com/resumehub/resumehub/internal/domain/user"
)

// Store interfaces are declared here, on the consumer side; the postgres
// repos satisfy them.

type UserStore interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CreateTx(ctx context.Context, tx pgx.Tx, req user.CreateUserRequest) (user.User, error)
}

type EducationStore interface {
	List(ctx context.Context, userID *string) ([]education.Education, error)
	ListByUser(ctx context.Context, userID string) ([]education.Education, error)
	GetByID(ctx context.Context, id string) (education.Education, error)
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CreateTx(ctx context.Context, tx pgx.Tx, req education.CreateEducationRequest) (education.Education, error)
}

type JobExperienceStore interface {
	List(ctx context.Context, userID *string) ([]jobexperience.JobExperience, error)
	ListByUser(ctx context.Context, userID string) ([]jobexperience.JobExperience, error)
	GetByID(ctx context.Context, id string) (jobexperience.JobExperience, error)
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CreateTx(ctx context.Context, tx pgx.Tx, req jobexperience.CreateJobExperienceRequest) (jobexperience.JobExperience, error)
}

// Resolver is the root of both Query and Mutation. Every field maps to a
// single store call; nested fields issue their own call per parent instance
// rather than joining or batching upstream.
type Resolver struct {
	users     UserStore
	education EducationStore
	jobs      JobExperienceStore
	log       *slog.Logger
}

func NewResolver(users UserStore, education EducationStore, jobs JobExperienceStore, log *slog.Logger) *Resolver {
	return &Resolver{
		users:     users,
		education: education,
		jobs:      jobs,
		log:       log,
	}
}

func (r *Resolver) Users(ctx context.Context) ([]*UserResolver, error) {
	records, err := r.users.List(ctx)

	if err != nil {
		return nil, err
	}

	out := make([]*UserResolver, 0, len(records))

	for _, u := range records {
		out = append(out, &UserResolver{root: r, u: u})
	}

	return out, nil
}

// User returns null, not an error, when the id is unknown.
func (r *Resolver) User(ctx context.Context, args struct{ UserID graphql.ID }) (*UserResolver, error) {
	u, err := r.users.GetByID(ctx, string(args.UserID))

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &UserResolver{root: r, u: u}, nil
}

func (r *Resolver) EducationRecords(ctx context.Context, args struct{ UserID *graphql.ID }) ([]*EducationResolver, error) {
	records, err := r.education.List(ctx, optionalID(args.UserID))

	if err != nil {
		return nil, err
	}

	out := make([]*EducationResolver, 0, len(records))

	for _, e := range records {
		out = append(out, &EducationResolver{root: r, e: e})
	}

	return out, nil
}

func (r *Resolver) JobExperiences(ctx context.Context, args struct{ UserID *graphql.ID }) ([]*JobExperienceResolver, error) {
	records, err := r.jobs.List(ctx, optionalID(args.UserID))

	if err != nil {
		return nil, err
	}

	out := make([]*JobExperienceResolver, 0, len(records))

	for _, j := range records {
		out = append(out, &JobExperienceResolver{root: r, j: j})
	}

	return out, nil
}

// optionalID treats an empty id the same as an omitted one, so a
// userId of "" never filters everything out.
func optionalID(id *graphql.ID) *string {
	if id == nil || *id == "" {
		return nil
	}

	s := string(*id)
	return &s
}
