package meeting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ParseError reports extractor output that is not a JSON object. Raw is
// the output exactly as received so it can be fixed by hand.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse extractor output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser turns extractor output into a MeetingRecord
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes raw as a single JSON object. Nothing is repaired: code
// fences, trailing text and non-object values are all errors.
func (p *Parser) Parse(raw string) (*entities.MeetingRecord, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var decoded interface{}
	if err := dec.Decode(&decoded); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("unexpected data after JSON object")}
	}

	value := entities.FromJSON(decoded)
	if value.Kind != entities.KindObject {
		return nil, &ParseError{Raw: raw, Err: entities.ErrNotAnObject}
	}

	return entities.NewMeetingRecord(value.Object, raw), nil
}
