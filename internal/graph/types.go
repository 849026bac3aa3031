package graph

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/resumehub/resumehub/internal/domain/education"
	"github.com/resumehub/resumehub/internal/domain/jobexperience"
	"github.com/resumehub/resumehub/internal/domain/user"
)

type UserResolver struct {
	root *Resolver
	u    user.User
}

func (r *UserResolver) UserID() graphql.ID {
	return graphql.ID(r.u.UserID)
}

func (r *UserResolver) Email() string {
	return r.u.Email
}

func (r *UserResolver) FullName() *string {
	return r.u.FullName
}

func (r *UserResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.u.CreatedAt}
}

func (r *UserResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.u.UpdatedAt}
}

// Education fetches this user's education rows. The call happens once per
// User instance in the response tree; results are never shared or cached
// between siblings.
func (r *UserResolver) Education(ctx context.Context) ([]*EducationResolver, error) {
	records, err := r.root.education.ListByUser(ctx, r.u.UserID)

	if err != nil {
		return nil, err
	}

	out := make([]*EducationResolver, 0, len(records))

	for _, e := range records {
		out = append(out, &EducationResolver{root: r.root, e: e})
	}

	return out, nil
}

func (r *UserResolver) JobExperience(ctx context.Context) ([]*JobExperienceResolver, error) {
	records, err := r.root.jobs.ListByUser(ctx, r.u.UserID)

	if err != nil {
		return nil, err
	}

	out := make([]*JobExperienceResolver, 0, len(records))

	for _, j := range records {
		out = append(out, &JobExperienceResolver{root: r.root, j: j})
	}

	return out, nil
}

type EducationResolver struct {
	root *Resolver
	e    education.Education
}

func (r *EducationResolver) EducationID() graphql.ID {
	return graphql.ID(r.e.EducationID)
}

func (r *EducationResolver) UserID() graphql.ID {
	return graphql.ID(r.e.UserID)
}

func (r *EducationResolver) InstitutionName() string {
	return r.e.InstitutionName
}

func (r *EducationResolver) Location() *string {
	return r.e.Location
}

func (r *EducationResolver) DateStarted() Date {
	return Date{Time: r.e.DateStarted}
}

func (r *EducationResolver) DateFinished() *Date {
	return optionalDate(r.e.DateFinished)
}

func (r *EducationResolver) Major() *string {
	return r.e.Major
}

func (r *EducationResolver) Minor() *string {
	return r.e.Minor
}

// Gpa reports a zero grade as null. See education.NormalizeGPA.
func (r *EducationResolver) Gpa() *float64 {
	return education.NormalizeGPA(r.e.GPA)
}

func (r *EducationResolver) Details() (*JSONObject, error) {
	return detailsObject(r.e.Details)
}

func (r *EducationResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.e.CreatedAt}
}

func (r *EducationResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.e.UpdatedAt}
}

// User resolves the owning user with its own lookup. A dangling reference
// yields null rather than an error.
func (r *EducationResolver) User(ctx context.Context) (*UserResolver, error) {
	u, err := r.root.users.GetByID(ctx, r.e.UserID)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &UserResolver{root: r.root, u: u}, nil
}

type JobExperienceResolver struct {
	root *Resolver
	j    jobexperience.JobExperience
}

func (r *JobExperienceResolver) JobID() graphql.ID {
	return graphql.ID(r.j.JobID)
}

func (r *JobExperienceResolver) UserID() graphql.ID {
	return graphql.ID(r.j.UserID)
}

func (r *JobExperienceResolver) CompanyName() string {
	return r.j.CompanyName
}

func (r *JobExperienceResolver) JobTitle() *string {
	return r.j.JobTitle
}

func (r *JobExperienceResolver) Location() *string {
	return r.j.Location
}

func (r *JobExperienceResolver) DateStarted() Date {
	return Date{Time: r.j.DateStarted}
}

func (r *JobExperienceResolver) DateLeft() *Date {
	return optionalDate(r.j.DateLeft)
}

func (r *JobExperienceResolver) Details() (*JSONObject, error) {
	return detailsObject(r.j.Details)
}

func (r *JobExperienceResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.j.CreatedAt}
}

func (r *JobExperienceResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.j.UpdatedAt}
}

func (r *JobExperienceResolver) User(ctx context.Context) (*UserResolver, error) {
	u, err := r.root.users.GetByID(ctx, r.j.UserID)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &UserResolver{root: r.root, u: u}, nil
}

func optionalDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}

	return &Date{Time: *t}
}

func detailsObject(raw json.RawMessage) (*JSONObject, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var obj JSONObject

	err := json.Unmarshal(raw, &obj)

	if err != nil {
		return nil, err
	}

	return &obj, nil
}
