// Package core turns raw AEC result files into typed records.
//
// This package holds the decoding pipeline independent of any transport or
// storage. It can be driven by the ingest loader, the HTTP server, CLI
// commands or tests without modification.
//
// # Pipeline
//
// Every record kind goes through the same stages:
//
//  1. The file is checked for valid UTF-8 (a leading BOM is dropped). Invalid
//     encoding is fatal for the file: [ErrInvalidEncoding].
//  2. Lines are tokenized with [SplitLine], a quote-toggle splitter.
//  3. [ResolveHeader] picks the header line, skipping an optional title.
//  4. Data rows are indexed against the single [HeaderIndex] for the file and
//     partitioned by [GroupRows] into groups of the kind's size.
//  5. Each group is decoded independently and concurrently. Failures are
//     logged with the kind's label and dropped; the rest of the file survives.
//
// # Kinds
//
// A record kind is described by a [Kind] value: its [KindInfo] (key, label,
// group size, published file name) and a decode function. Kind descriptors
// register their KindInfo at init time so the HTTP API and CLI can list them:
//
//	var FirstPreferences = core.Kind[election.FirstPreference]{
//	    Info:   core.KindInfo{Key: "first_preferences", Label: "First Preference", GroupSize: 1},
//	    Decode: decodeFirstPreference,
//	}
//
//	func init() { core.Register(FirstPreferences.Info) }
//
// # Error Handling
//
// Group-level failures are wrapped in [DecodeError] and reported in the
// [Report]. Technical errors are mapped to user-facing messages and codes
// with [MapError].
//
// # Ordering
//
// Decoding is parallel. Callers must not rely on output order matching file
// order; sort by a domain key when a stable order is needed.
package core
