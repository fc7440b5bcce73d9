package utils

import (
	"html/template"
	"time"
)

const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD form value. An empty value yields nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	t = DateOnly(t)
	return &t, nil
}

// FormatExpiry renders an optional expiry date for the views.
func FormatExpiry(t *time.Time) string {
	if t == nil {
		return "No expiry"
	}
	return t.Format("02 Jan 2006")
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006, 15:04")
}

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"expiry": FormatExpiry,
		"stamp":  FormatTimestamp,
	}
}
