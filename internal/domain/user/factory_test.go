package user

import "testing"

func TestNewFromCreateRequestGeneratesUniqueIDs(t *testing.T) {
	req := CreateUserRequest{Email: "a@b.com", Password: "x"}

	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		u := NewFromCreateRequest(req)

		if u.UserID == "" {
			t.Fatal("missing id")
		}

		if seen[u.UserID] {
			t.Fatalf("duplicate id %s", u.UserID)
		}

		seen[u.UserID] = true
	}
}

func TestNewFromCreateRequestHashesPassword(t *testing.T) {
	u := NewFromCreateRequest(CreateUserRequest{Email: "a@b.com", Password: "secret"})

	if u.PasswordHash != "hashed_secret" {
		t.Errorf("hash scheme changed: %s", u.PasswordHash)
	}

	if u.CreatedAt.IsZero() || !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Errorf("timestamps not set together: %v %v", u.CreatedAt, u.UpdatedAt)
	}
}
