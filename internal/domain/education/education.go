package education

import (
	"encoding/json"
	"errors"
	"time"
)

type Education struct {
	EducationID     string          `json:"educationId"`
	UserID          string          `json:"userId"`
	InstitutionName string          `json:"institutionName"`
	Location        *string         `json:"location,omitempty"`
	DateStarted     time.Time       `json:"dateStarted"`
	DateFinished    *time.Time      `json:"dateFinished,omitempty"`
	Major           *string         `json:"major,omitempty"`
	Minor           *string         `json:"minor,omitempty"`
	GPA             *float64        `json:"gpa,omitempty"`
	Details         json.RawMessage `json:"details,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

var ErrNotFound = errors.New("education record not found")

type CreateEducationRequest struct {
	UserID          string          `json:"userId"`
	InstitutionName string          `json:"institutionName"`
	Location        *string         `json:"location,omitempty"`
	DateStarted     time.Time       `json:"dateStarted"`
	DateFinished    *time.Time      `json:"dateFinished,omitempty"`
	Major           *string         `json:"major,omitempty"`
	Minor           *string         `json:"minor,omitempty"`
	GPA             *float64        `json:"gpa,omitempty"`
	Details         json.RawMessage `json:"details,omitempty"`
}
