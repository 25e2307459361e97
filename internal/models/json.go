package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON holds a schemaless jsonb column. Its one producer is the Stripe
// webhook: the raw checkout.session payload is kept on the payment row so a
// disputed charge can be traced back to exactly what Stripe sent.
type JSON map[string]interface{}

func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSON", value)
	}
}

// StringList is a jsonb array of strings, used for the benefit types a donor
// reported on their assessment.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}
