package notion

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"
)

// ErrUnrecognizedDate is returned for date text outside the accepted forms
var ErrUnrecognizedDate = errors.New("unrecognized date")

// accepted date forms, after the first space is replaced with "T"
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// NormalizeDate reads "YYYY-MM-DD" with an optional "HH:MM" or "HH:MM:SS"
// part, separated by a space or "T", and returns it with the "T" separator.
// No zone is added.
func NormalizeDate(s string) (string, error) {
	value := strings.Replace(strings.TrimSpace(s), " ", "T", 1)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedDate, s)
}

// dateProperty is a date property whose start is sent exactly as written.
// notionapi.Date always carries a zone.
type dateProperty struct {
	Type notionapi.PropertyType `json:"type"`
	Date localDate              `json:"date"`
}

type localDate struct {
	Start string `json:"start"`
}

func (p dateProperty) GetID() string {
	return ""
}

func (p dateProperty) GetType() notionapi.PropertyType {
	return p.Type
}

func newDateProperty(start string) dateProperty {
	return dateProperty{Type: notionapi.PropertyTypeDate, Date: localDate{Start: start}}
}
