package graph

import (
	"testing"
	"time"
)

func TestDateUnmarshal(t *testing.T) {
	var d Date

	if err := d.UnmarshalGraphQL("2020-01-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	if !d.Time.Equal(want) {
		t.Errorf("got %v, want %v", d.Time, want)
	}

	if err := d.UnmarshalGraphQL("01/01/2020"); err == nil {
		t.Error("expected an error for a non ISO date")
	}

	if err := d.UnmarshalGraphQL(42); err == nil {
		t.Error("expected an error for a non string input")
	}
}

func TestDateMarshal(t *testing.T) {
	d := Date{Time: time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)}

	raw, err := d.MarshalJSON()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(raw) != `"2023-09-15"` {
		t.Errorf("got %s", raw)
	}
}

func TestJSONObjectUnmarshal(t *testing.T) {
	var j JSONObject

	if err := j.UnmarshalGraphQL(map[string]interface{}{"k": "v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if j["k"] != "v" {
		t.Errorf("value lost: %v", j)
	}

	if err := j.UnmarshalGraphQL("not an object"); err == nil {
		t.Error("expected an error for a non object input")
	}
}
