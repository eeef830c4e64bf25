package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w      io.Writer
	indent bool
	now    func() time.Time
}

// NewJSONFormatter creates a JSONFormatter writing to w.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{w: w, indent: indent, now: time.Now}
}

// JSONReport is the document written by JSONFormatter.
type JSONReport struct {
	Header JSONHeader `json:"header"`
	*Report
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Format writes the report as one JSON document followed by a newline.
func (f *JSONFormatter) Format(r *Report) error {
	doc := JSONReport{
		Header: JSONHeader{
			Tool:      Tool,
			Version:   Version,
			Timestamp: f.now().UTC().Format(time.RFC3339),
		},
		Report: r,
	}

	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := f.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
