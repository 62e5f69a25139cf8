// Package event provides the sporting-event record returned by TheSportsDB and the
// fixed sport and league catalogs used to query and filter it.
//
// Events carry no identifier of their own. They are plain values decoded from the API,
// immutable after fetch, and compared by content. The package also holds the display
// helpers (date parts, time labels, sport icons) used by the renderers.
package event
