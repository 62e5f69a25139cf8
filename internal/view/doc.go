// Package view holds the per-request view state, the paginator and the HTML renderer.
//
// State is a plain value: every transition (apply filters, reset, previous/next page,
// switch layout) returns a new State, and the state travels between requests in the
// query string. The renderer turns a State plus the filtered events into markup in one
// of two layouts, list or grid, which differ only in markup.
package view
