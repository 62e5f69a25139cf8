// Package cli implements the command-line interface for sports-events.
//
// The cli package provides the Cobra-based CLI with two commands: serve runs the
// HTTP listing, and list fetches the upcoming fixtures once and prints one page of
// them as text or JSON. Both read their settings from the environment (see package
// config), with flags taking precedence.
package cli
