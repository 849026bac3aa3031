package jobexperience

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateJobExperienceRequest) JobExperience {
	now := time.Now().UTC()

	return JobExperience{
		JobID:       uuid.NewString(),
		UserID:      req.UserID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Location:    req.Location,
		DateStarted: req.DateStarted,
		DateLeft:    req.DateLeft,
		Details:     req.Details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
