// Package injector attaches the per-site pseudonym URL to a page context:
// it sets the x-openpims cookie for the page host and wraps the page's
// fetch and XHR clients so every request carries the X-OpenPIMS header.
//
// Injection is best-effort. Missing credentials leave the page untouched
// and failures are logged, never returned to the page loader.
package injector
