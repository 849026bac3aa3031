package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component, transported as
// "YYYY-MM-DD".
type Date struct {
	time.Time
}

func (Date) ImplementsGraphQLType(name string) bool {
	return name == "Date"
}

func (d *Date) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case string:
		t, err := time.Parse(dateLayout, v)

		if err != nil {
			return fmt.Errorf("date must be formatted as %s: %w", dateLayout, err)
		}

		d.Time = t
		return nil
	case time.Time:
		d.Time = v
		return nil
	default:
		return fmt.Errorf("wrong type for Date: %T", input)
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// JSONObject carries a free-form JSON document in and out of the JSON scalar.
type JSONObject map[string]interface{}

func (JSONObject) ImplementsGraphQLType(name string) bool {
	return name == "JSON"
}

func (j *JSONObject) UnmarshalGraphQL(input interface{}) error {
	obj, ok := input.(map[string]interface{})

	if !ok {
		return fmt.Errorf("wrong type for JSON: %T", input)
	}

	*j = obj
	return nil
}

func (j JSONObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}(j))
}
