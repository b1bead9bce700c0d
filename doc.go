// Package ouch implements the decompression engine of the ouch archive
// utility. Given a file whose name encodes one or more nested
// compression or archive transforms (for example .tar.gz, .zip or .7z),
// it reconstructs the original content by composing format-specific
// streaming decoders and extractors into a single pipeline.
//
// The engine distinguishes layerable compression formats, which can be
// chained freely, from archive formats, which yield named entries and
// may only appear as the innermost transform. Archive formats that need
// random access over their input are either read in place (a sole zip
// file) or, when nested under compression layers, fully buffered in
// memory behind an interactive confirmation.
package ouch
