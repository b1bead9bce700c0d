package telemetry

import (
	"context"
	"encoding/json"
	"time"
)

// Data holds all telemetry data of a decompression.
type Data struct {
	// ExtractedFiles is the number of produced files, directories and symlinks
	ExtractedFiles int64 `json:"extracted_files"`

	// ExtractionDuration is the time the decompression took
	ExtractionDuration time.Duration `json:"extraction_duration"`

	// ExtractionErrors is the number of errors during decompression
	ExtractionErrors int64 `json:"extraction_errors"`

	// ExtractedType is the resolved transform chain, e.g. "tar.gzip"
	ExtractedType string `json:"extracted_type"`

	// InputSize is the number of bytes read from the input
	InputSize int64 `json:"input_size"`

	// LastError is the last error during decompression
	LastError error `json:"last_error"`
}

// String returns a string representation of [Data].
func (d Data) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (d Data) MarshalJSON() ([]byte, error) {
	var lastError string
	if d.LastError != nil {
		lastError = d.LastError.Error()
	}

	type alias Data
	return json.Marshal(&struct {
		LastError string `json:"last_error"`
		*alias
	}{
		LastError: lastError,
		alias:     (*alias)(&d),
	})
}

// Hook is a function type that consumes [Data] after a decompression
// has finished, for example to log or submit it.
type Hook func(context.Context, *Data)
