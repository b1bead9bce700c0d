package telemetry

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDataString(t *testing.T) {
	d := Data{
		ExtractedFiles:     3,
		ExtractionDuration: time.Second,
		ExtractedType:      "tar.gzip",
		InputSize:          1024,
	}

	s := d.String()
	for _, want := range []string{`"extracted_files":3`, `"extracted_type":"tar.gzip"`, `"input_size":1024`} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %s, missing %s", s, want)
		}
	}
}

func TestDataStringWithError(t *testing.T) {
	d := Data{
		ExtractionErrors: 1,
		LastError:        errors.New("kaputt"),
	}

	if s := d.String(); !strings.Contains(s, `"last_error":"kaputt"`) {
		t.Errorf("String() = %s, missing last error", s)
	}
}
