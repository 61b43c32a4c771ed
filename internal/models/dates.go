package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FlexDate absorbs the two date shapes the core-banking API emits:
// an integer triple [year, month, day] or a plain string. Whatever
// arrives is normalized once here so the rest of the pipeline only
// ever sees YYYY-MM-DD.
type FlexDate struct {
	raw string
	iso string
}

func NewFlexDate(s string) FlexDate {
	var d FlexDate
	d.set(s)
	return d
}

func (d *FlexDate) UnmarshalJSON(b []byte) error {
	var triple []int
	if err := json.Unmarshal(b, &triple); err == nil {
		if len(triple) >= 3 {
			d.raw = fmt.Sprintf("[%d,%d,%d]", triple[0], triple[1], triple[2])
			d.iso = fmt.Sprintf("%04d-%02d-%02d", triple[0], triple[1], triple[2])
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date is neither triple nor string: %s", string(b))
	}
	d.set(s)
	return nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.iso != "" {
		return json.Marshal(d.iso)
	}
	return json.Marshal(d.raw)
}

func (d *FlexDate) set(s string) {
	s = strings.TrimSpace(s)
	d.raw = s
	if s == "" {
		return
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"02 January 2006",
		"2006/01/02",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			d.iso = t.Format("2006-01-02")
			return
		}
	}
}

// ISO returns the canonical YYYY-MM-DD form, or "" when the date is
// absent or unparseable.
func (d FlexDate) ISO() string { return d.iso }

// Display returns the canonical form when available and otherwise
// echoes the raw source value, so a malformed date never fails an
// export.
func (d FlexDate) Display() string {
	if d.iso != "" {
		return d.iso
	}
	return d.raw
}

func (d FlexDate) IsZero() bool { return d.iso == "" && d.raw == "" }
