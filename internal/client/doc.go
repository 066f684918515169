// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive popup client.
//
// Without arguments it runs the terminal popup against the agent's message
// channel. Subcommands cover the same actions non-interactively, and fetch
// loads a URL through an in-process page context carrying every
// enforcement point.
package client
