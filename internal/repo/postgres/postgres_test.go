package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestGpaNumericTextualRoundTrip(t *testing.T) {
	gpa := 3.75

	got := gpaNumeric(&gpa)

	// the decimal string, not a binary-float approximation, reaches the
	// NUMERIC(3,2) column
	if got != "3.75" {
		t.Errorf("got %v", got)
	}

	if gpaNumeric(nil) != nil {
		t.Error("nil gpa must stay NULL")
	}
}

func TestDetailsJSON(t *testing.T) {
	if detailsJSON(nil) != nil {
		t.Error("empty details must stay NULL")
	}

	if got := detailsJSON([]byte(`{"a":1}`)); got != `{"a":1}` {
		t.Errorf("got %v", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	if !IsUniqueViolation(pgErr) {
		t.Error("23505 should be a unique violation")
	}

	if !IsUniqueViolation(fmt.Errorf("insert: %w", pgErr)) {
		t.Error("wrapped errors should match")
	}

	if IsUniqueViolation(errors.New("other")) {
		t.Error("plain errors should not match")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("23503 should be a foreign key violation")
	}

	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 is not a foreign key violation")
	}
}
