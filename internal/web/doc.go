// Package web serves the event listing, the contact page and the JSON and
// iCalendar exports over HTTP.
//
// Every piece of view state (filters, page, layout, expanded FAQ answers) lives in
// the query string, so each page is a plain GET that can be bookmarked or shared.
package web
