package jobexperience

import (
	"encoding/json"
	"errors"
	"time"
)

type JobExperience struct {
	JobID       string          `json:"jobId"`
	UserID      string          `json:"userId"`
	CompanyName string          `json:"companyName"`
	JobTitle    *string         `json:"jobTitle,omitempty"`
	Location    *string         `json:"location,omitempty"`
	DateStarted time.Time       `json:"dateStarted"`
	DateLeft    *time.Time      `json:"dateLeft,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

var ErrNotFound = errors.New("job experience not found")

type CreateJobExperienceRequest struct {
	UserID      string          `json:"userId"`
	CompanyName string          `json:"companyName"`
	JobTitle    *string         `json:"jobTitle,omitempty"`
	Location    *string         `json:"location,omitempty"`
	DateStarted time.Time       `json:"dateStarted"`
	DateLeft    *time.Time      `json:"dateLeft,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
}
