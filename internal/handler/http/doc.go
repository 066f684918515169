// Package http implements the agent's local message channel.
//
// Popups, options pages and other local clients post [models.Message]
// values to /api/messages and receive a [models.MessageResponse]. The
// router also exposes the installed header rules and the prometheus
// registry. Request tracing, access logging and panic recovery run as
// middleware before a request reaches the service layer.
package http
