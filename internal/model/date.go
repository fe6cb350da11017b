package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It marshals
// to a quoted YYYY-MM-DD string and stores as the same string (or a
// DATE column) in the database, so a round trip preserves the exact
// textual form.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

// NewDate constructs a Date from a year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date %s: must be a YYYY-MM-DD string", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer, storing the date as its string form.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. SQLite hands back strings (or parsed
// times for DATE-typed columns); the postgres driver hands back
// time.Time.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.t = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// DatePatch is a nullable-date field of a request body, used by both
// create and update payloads. Set is true when the key appeared in the
// body at all; Value is nil when the client sent null or an empty
// string, meaning no date.
type DatePatch struct {
	Set   bool
	Value *Date
}

// UnmarshalJSON is invoked only when the field's key is present, so
// its presence alone marks the patch field as set. Null and the empty
// string both clear the date; anything else must parse as YYYY-MM-DD.
func (p *DatePatch) UnmarshalJSON(b []byte) error {
	p.Set = true
	s := string(b)
	if s == "null" || s == `""` {
		p.Value = nil
		return nil
	}
	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	p.Value = &d
	return nil
}

// MarshalJSON renders the patch field; used only in tests and logs.
func (p DatePatch) MarshalJSON() ([]byte, error) {
	if !p.Set || p.Value == nil {
		return []byte("null"), nil
	}
	return p.Value.MarshalJSON()
}
