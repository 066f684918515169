// Package agent wires the background agent: storage, the pseudonym cache,
// the header-rule manager, the message channel and the background workers.
package agent
