package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringArray stores a []string as a jsonb column.
type StringArray []string

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = []string{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		*s = []string{}
		return nil
	}
	return json.Unmarshal(bytes, s)
}

func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// GormDataType defines the data type for GORM
func (StringArray) GormDataType() string {
	return "jsonb"
}
