// Package config provides configuration loading, merging, and validation
// for the OpenPIMS agent and client.
//
// Configuration is assembled from the following sources, later sources
// overriding earlier non-zero fields:
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetAgentConfig] for the background agent and
// [GetClientConfig] for the interactive client.
package config
