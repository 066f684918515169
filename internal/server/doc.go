// Package server runs the agent's local message channel listener and shuts
// it down gracefully when the agent's context ends.
package server
