package internal

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Date is a point in time as reported by the rates source, e.g.
// "Fri, 27 Mar 2020 00:00:01 +0000".
type Date struct{ time.Time }

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	dateLayout,
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	s := strings.Trim(string(b), "\"")
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("parse date %q", s)
}

// String renders the date for the status line; zero dates render empty.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02 15:04 MST")
}
