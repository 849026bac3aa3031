package education

import (
	"testing"
	"time"
)

func TestNewFromCreateRequestDropsZeroGPA(t *testing.T) {
	zero := 0.0
	req := CreateEducationRequest{
		UserID:          "u1",
		InstitutionName: "MIT",
		DateStarted:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		GPA:             &zero,
	}

	e := NewFromCreateRequest(req)

	if e.GPA != nil {
		t.Errorf("a 0.0 gpa must be stored as absent, got %v", *e.GPA)
	}
}

func TestNewFromCreateRequestKeepsRealGPA(t *testing.T) {
	gpa := 3.75
	req := CreateEducationRequest{
		UserID:          "u1",
		InstitutionName: "MIT",
		DateStarted:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		GPA:             &gpa,
	}

	e := NewFromCreateRequest(req)

	if e.GPA == nil || *e.GPA != 3.75 {
		t.Errorf("gpa lost: %v", e.GPA)
	}

	if e.EducationID == "" {
		t.Error("missing generated id")
	}

	if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
		t.Error("missing timestamps")
	}
}
