// Package sportsdb provides the HTTP client for TheSportsDB v1 JSON API.
//
// Two endpoints are used: eventsnextleague.php for the upcoming fixtures of a league and
// eventsseason.php for a whole season of a sport. The Fetch methods are best-effort: any
// transport, status or decode failure is logged and counted, and the caller receives an
// empty slice instead of an error.
package sportsdb
