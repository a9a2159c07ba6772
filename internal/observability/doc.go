// Package observability records task mutations as structured events and
// derives session metrics from them. Events are kept in memory or appended
// to a JSON Lines (JSONL) file when an event log path is configured.
package observability
