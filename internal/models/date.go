package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date stored as a SQL date column and exchanged as
// YYYY-MM-DD. RFC 3339 timestamps are accepted on input.
type Date struct {
	datatypes.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))}
}

func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("date %q must be formatted as YYYY-MM-DD", s)
		}
	}
	d.Date = datatypes.Date(t)
	return nil
}
