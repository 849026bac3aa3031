package graph

import (
	"context"
	"encoding/json"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/jackc/pgx/v5"

	"github.com/resumehub/resumehub/internal/domain/education"
	"github.com/resumehub/resumehub/internal/domain/jobexperience"
	"github.com/resumehub/resumehub/internal/domain/user"
	"github.com/resumehub/resumehub/internal/repo/postgres"
)

type CreateUserInput struct {
	Email    string
	FullName *string
	Password string
}

// UpdateUserInput exists in the schema but no mutation consumes it yet.
type UpdateUserInput struct {
	Email    *string
	FullName *string
}

type CreateEducationInput struct {
	UserID          graphql.ID
	InstitutionName string
	Location        *string
	DateStarted     Date
	DateFinished    *Date
	Major           *string
	Minor           *string
	Gpa             *float64
	Details         *JSONObject
}

// UpdateEducationInput exists in the schema but no mutation consumes it yet.
type UpdateEducationInput struct {
	InstitutionName *string
	Location        *string
	DateStarted     *Date
	DateFinished    *Date
	Major           *string
	Minor           *string
	Gpa             *float64
	Details         *JSONObject
}

type CreateJobExperienceInput struct {
	UserID      graphql.ID
	CompanyName string
	JobTitle    *string
	Location    *string
	DateStarted Date
	DateLeft    *Date
	Details     *JSONObject
}

// UpdateJobExperienceInput exists in the schema but no mutation consumes it
// yet.
type UpdateJobExperienceInput struct {
	CompanyName *string
	JobTitle    *string
	Location    *string
	DateStarted *Date
	DateLeft    *Date
	Details     *JSONObject
}

type CreateUserResponse struct {
	success bool
	message string
	user    *UserResolver
}

func (r *CreateUserResponse) Success() bool       { return r.success }
func (r *CreateUserResponse) Message() string     { return r.message }
func (r *CreateUserResponse) User() *UserResolver { return r.user }

type CreateEducationResponse struct {
	success   bool
	message   string
	education *EducationResolver
}

func (r *CreateEducationResponse) Success() bool                 { return r.success }
func (r *CreateEducationResponse) Message() string               { return r.message }
func (r *CreateEducationResponse) Education() *EducationResolver { return r.education }

type CreateJobExperienceResponse struct {
	success bool
	message string
	job     *JobExperienceResolver
}

func (r *CreateJobExperienceResponse) Success() bool                         { return r.success }
func (r *CreateJobExperienceResponse) Message() string                       { return r.message }
func (r *CreateJobExperienceResponse) JobExperience() *JobExperienceResolver { return r.job }

// CreateUser inserts a user inside its own transaction. Failures roll back
// and come home as a structured response, never as a GraphQL error.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input CreateUserInput }) (*CreateUserResponse, error) {
	req := user.CreateUserRequest{
		Email:    args.Input.Email,
		FullName: args.Input.FullName,
		Password: args.Input.Password,
	}

	created, err := createInTx(ctx, r.users.BeginTx, r.users.CreateTx, req)

	if err != nil {
		r.logMutationErr(ctx, "createUser", err)
		return &CreateUserResponse{message: "Error creating user: " + err.Error()}, nil
	}

	// re-read the committed row
	fresh, err := r.users.GetByID(ctx, created.UserID)

	if err != nil {
		r.logMutationErr(ctx, "createUser", err)
		return &CreateUserResponse{message: "Error creating user: " + err.Error()}, nil
	}

	return &CreateUserResponse{
		success: true,
		message: "User created successfully",
		user:    &UserResolver{root: r, u: fresh},
	}, nil
}

func (r *Resolver) CreateEducation(ctx context.Context, args struct{ Input CreateEducationInput }) (*CreateEducationResponse, error) {
	req := education.CreateEducationRequest{
		UserID:          string(args.Input.UserID),
		InstitutionName: args.Input.InstitutionName,
		Location:        args.Input.Location,
		DateStarted:     args.Input.DateStarted.Time,
		DateFinished:    optionalTime(args.Input.DateFinished),
		Major:           args.Input.Major,
		Minor:           args.Input.Minor,
		GPA:             args.Input.Gpa,
		Details:         rawDetails(args.Input.Details),
	}

	created, err := createInTx(ctx, r.education.BeginTx, r.education.CreateTx, req)

	if err != nil {
		r.logMutationErr(ctx, "createEducation", err)
		return &CreateEducationResponse{message: "Error creating education record: " + err.Error()}, nil
	}

	fresh, err := r.education.GetByID(ctx, created.EducationID)

	if err != nil {
		r.logMutationErr(ctx, "createEducation", err)
		return &CreateEducationResponse{message: "Error creating education record: " + err.Error()}, nil
	}

	return &CreateEducationResponse{
		success:   true,
		message:   "Education record created successfully",
		education: &EducationResolver{root: r, e: fresh},
	}, nil
}

func (r *Resolver) CreateJobExperience(ctx context.Context, args struct{ Input CreateJobExperienceInput }) (*CreateJobExperienceResponse, error) {
	req := jobexperience.CreateJobExperienceRequest{
		UserID:      string(args.Input.UserID),
		CompanyName: args.Input.CompanyName,
		JobTitle:    args.Input.JobTitle,
		Location:    args.Input.Location,
		DateStarted: args.Input.DateStarted.Time,
		DateLeft:    optionalTime(args.Input.DateLeft),
		Details:     rawDetails(args.Input.Details),
	}

	created, err := createInTx(ctx, r.jobs.BeginTx, r.jobs.CreateTx, req)

	if err != nil {
		r.logMutationErr(ctx, "createJobExperience", err)
		return &CreateJobExperienceResponse{message: "Error creating job experience: " + err.Error()}, nil
	}

	fresh, err := r.jobs.GetByID(ctx, created.JobID)

	if err != nil {
		r.logMutationErr(ctx, "createJobExperience", err)
		return &CreateJobExperienceResponse{message: "Error creating job experience: " + err.Error()}, nil
	}

	return &CreateJobExperienceResponse{
		success: true,
		message: "Job experience created successfully",
		job:     &JobExperienceResolver{root: r, j: fresh},
	}, nil
}

// createInTx runs a single insert between Begin and Commit. The deferred
// rollback is a no-op once the commit has gone through.
func createInTx[Req, Ent any](
	ctx context.Context,
	begin func(context.Context) (pgx.Tx, error),
	create func(context.Context, pgx.Tx, Req) (Ent, error),
	req Req,
) (Ent, error) {
	var zero Ent

	tx, err := begin(ctx)

	if err != nil {
		return zero, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	created, err := create(ctx, tx, req)

	if err != nil {
		return zero, err
	}

	err = tx.Commit(ctx)

	if err != nil {
		return zero, err
	}

	return created, nil
}

// logMutationErr records the failure with its constraint class so unique
// and foreign key violations are searchable without parsing error text.
func (r *Resolver) logMutationErr(ctx context.Context, op string, err error) {
	if r.log == nil {
		return
	}

	args := []any{"op", op, "err", err}

	switch {
	case postgres.IsUniqueViolation(err):
		args = append(args, "constraint", "unique")
	case postgres.IsForeignKeyViolation(err):
		args = append(args, "constraint", "foreign_key")
	}

	r.log.ErrorContext(ctx, "mutation failed", args...)
}

func optionalTime(d *Date) *time.Time {
	if d == nil {
		return nil
	}

	t := d.Time
	return &t
}

func rawDetails(obj *JSONObject) json.RawMessage {
	if obj == nil {
		return nil
	}

	raw, err := json.Marshal(obj)

	if err != nil {
		return nil
	}

	return raw
}
