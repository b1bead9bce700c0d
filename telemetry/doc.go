// Package telemetry holds the data that is collected during a
// decompression and the hook type used to consume it afterwards.
package telemetry
