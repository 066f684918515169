// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the agent's prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "openpims"

// Rule install outcomes.
const (
	OutcomeInstalled = "installed"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// Metrics holds every collector registered by the agent.
type Metrics struct {
	registry *prometheus.Registry

	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	RuleInstalls   *prometheus.CounterVec
	ActiveRules    prometheus.Gauge
	ObservedHosts  prometheus.Gauge
	Injections     prometheus.Counter
	Logins         *prometheus.CounterVec
	MessageLatency *prometheus.HistogramVec
}

// New creates the collectors on a private registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pseudonym_cache",
			Name:      "hits_total",
			Help:      "Pseudonym cache lookups served without derivation.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pseudonym_cache",
			Name:      "misses_total",
			Help:      "Pseudonym cache lookups that required derivation.",
		}),
		RuleInstalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rules",
			Name:      "installs_total",
			Help:      "Dynamic rule installation attempts by outcome.",
		}, []string{"mode", "outcome"}),
		ActiveRules: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rules",
			Name:      "active",
			Help:      "Dynamic rules currently installed.",
		}),
		ObservedHosts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rules",
			Name:      "observed_hosts",
			Help:      "Hostnames in the observed-domain set.",
		}),
		Injections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "injector",
			Name:      "pages_total",
			Help:      "Pages that received the pseudonym cookie and interceptors.",
		}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		MessageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "messages",
			Name:      "duration_seconds",
			Help:      "Message channel handling latency by action.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CacheHits,
		m.CacheMisses,
		m.RuleInstalls,
		m.ActiveRules,
		m.ObservedHosts,
		m.Injections,
		m.Logins,
		m.MessageLatency,
	)

	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CacheHit implements pseudonym.CacheObserver.
func (m *Metrics) CacheHit() { m.CacheHits.Inc() }

// CacheMiss implements pseudonym.CacheObserver.
func (m *Metrics) CacheMiss() { m.CacheMisses.Inc() }

// RuleInstalled records a rule installation outcome.
func (m *Metrics) RuleInstalled(mode, outcome string) {
	m.RuleInstalls.WithLabelValues(mode, outcome).Inc()
}

// RulesActive sets the number of installed rules and observed hosts.
func (m *Metrics) RulesActive(rules, observed int) {
	m.ActiveRules.Set(float64(rules))
	m.ObservedHosts.Set(float64(observed))
}

// PageInjected records an injected page.
func (m *Metrics) PageInjected() { m.Injections.Inc() }

// LoginResult records a login attempt.
func (m *Metrics) LoginResult(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.Logins.WithLabelValues(result).Inc()
}

// ObserveMessage records how long a message channel action took.
func (m *Metrics) ObserveMessage(action string, d time.Duration) {
	m.MessageLatency.WithLabelValues(action).Observe(d.Seconds())
}
