package ouch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/boot-sandre/ouch/telemetry"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config holds all configuration options for the decompression engine.
// The options can be adjusted using the option pattern style.
type Config struct {
	// bufferCapacity is the size of the read buffer wrapped around the
	// input file before decoder chaining
	bufferCapacity int

	// logger stream for diagnostics
	logger logger

	// maxExtractionSize is the maximum size of a single file after
	// decompression. Set value to -1 to disable the check.
	maxExtractionSize int64

	// maxInputSize is the maximum number of bytes read from the input.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// policy decides how interactive questions are answered
	policy QuestionPolicy

	// promptIn is where answers to interactive questions are read from
	promptIn io.Reader

	// promptOut is where interactive questions are written to
	promptOut io.Writer

	// quiet suppresses informational status messages
	quiet bool

	// statusOut is where status messages for the user are written to
	statusOut io.Writer

	// target is the filesystem extracted content is written to
	target Target

	// telemetryHook is a function to consume telemetry data after a
	// finished extraction
	telemetryHook telemetry.Hook
}

const (
	// defaultBufferCapacity mirrors the capacity used when the archives
	// were produced; big enough to keep syscall overhead low.
	defaultBufferCapacity = 1024 * 32

	// defaultMaxExtractionSize disables the extraction size check.
	defaultMaxExtractionSize = -1

	// defaultMaxInputSize disables the input size check.
	defaultMaxInputSize = -1
)

// NewConfig creates a new Config with default values and applies the
// given options.
func NewConfig(opts ...ConfigOption) *Config {
	config := &Config{
		bufferCapacity:    defaultBufferCapacity,
		logger:            noopLogger{},
		maxExtractionSize: defaultMaxExtractionSize,
		maxInputSize:      defaultMaxInputSize,
		policy:            PolicyAsk,
		promptIn:          os.Stdin,
		promptOut:         os.Stderr,
		quiet:             false,
		statusOut:         os.Stdout,
		target:            NewDisk(),
		telemetryHook:     func(context.Context, *telemetry.Data) {},
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// BufferCapacity returns the size of the input read buffer.
func (c *Config) BufferCapacity() int {
	return c.bufferCapacity
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxExtractionSize returns the maximum size of a single decompressed
// file, -1 if disabled.
func (c *Config) MaxExtractionSize() int64 {
	return c.maxExtractionSize
}

// MaxInputSize returns the maximum input size, -1 if disabled.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// Policy returns the question policy.
func (c *Config) Policy() QuestionPolicy {
	return c.policy
}

// PromptInput returns the reader interactive answers are read from.
func (c *Config) PromptInput() io.Reader {
	return c.promptIn
}

// PromptOutput returns the writer interactive questions are written to.
func (c *Config) PromptOutput() io.Writer {
	return c.promptOut
}

// Quiet returns true if informational status messages are suppressed.
func (c *Config) Quiet() bool {
	return c.quiet
}

// Target returns the filesystem extracted content is written to.
func (c *Config) Target() Target {
	return c.target
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() telemetry.Hook {
	return c.telemetryHook
}

// WithBufferCapacity options pattern function to set the input read
// buffer capacity.
func WithBufferCapacity(n int) ConfigOption {
	return func(c *Config) {
		if n > 0 {
			c.bufferCapacity = n
		}
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(l logger) ConfigOption {
	return func(c *Config) {
		c.logger = l
	}
}

// WithMaxExtractionSize options pattern function to set the maximum
// size of a single decompressed file. Set value to -1 to disable the
// check.
func WithMaxExtractionSize(n int64) ConfigOption {
	return func(c *Config) {
		c.maxExtractionSize = n
	}
}

// WithMaxInputSize options pattern function to set the maximum input
// size. Set value to -1 to disable the check.
func WithMaxInputSize(n int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = n
	}
}

// WithPolicy options pattern function to set the question policy.
func WithPolicy(p QuestionPolicy) ConfigOption {
	return func(c *Config) {
		c.policy = p
	}
}

// WithPromptInput options pattern function to set the reader
// interactive answers are read from.
func WithPromptInput(r io.Reader) ConfigOption {
	return func(c *Config) {
		c.promptIn = r
	}
}

// WithPromptOutput options pattern function to set the writer
// interactive questions are written to.
func WithPromptOutput(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.promptOut = w
	}
}

// WithQuiet options pattern function to suppress informational status
// messages.
func WithQuiet(quiet bool) ConfigOption {
	return func(c *Config) {
		c.quiet = quiet
	}
}

// WithStatusWriter options pattern function to set the writer status
// messages for the user are written to.
func WithStatusWriter(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.statusOut = w
	}
}

// WithTarget options pattern function to set the output filesystem.
func WithTarget(t Target) ConfigOption {
	return func(c *Config) {
		c.target = t
	}
}

// WithTelemetryHook options pattern function to set the telemetry hook.
func WithTelemetryHook(hook telemetry.Hook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// statusf writes an informational status message unless quiet is set.
func (c *Config) statusf(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.statusOut, format+"\n", args...)
}

// accessiblef writes a status message regardless of quiet. It is used
// for the final success message, which screen readers and
// non-interactive consumers rely on to reason about the outcome.
func (c *Config) accessiblef(format string, args ...interface{}) {
	fmt.Fprintf(c.statusOut, format+"\n", args...)
}
