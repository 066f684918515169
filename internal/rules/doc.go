// Package rules manages the dynamic header rules that attach the per-site
// pseudonym URL to outbound requests.
//
// The rule set lives behind the [Engine] contract. [MemoryEngine] is the
// in-process engine and [Transport] is the http.RoundTripper that applies
// it to requests after notifying the [Manager] of the request host.
//
// The Manager works in one of two modes:
//
//   - global: a single catch-all rule (id 1) whose header value is the
//     synced fallback URL;
//   - per-domain: one rule per observed hostname whose header value is the
//     hostname's pseudonym URL and whose id is the hostname hashed into
//     [1, IDSpace].
package rules
