// Package sheet holds the typed view of one spreadsheet tab: the raw cell
// grid as it arrives from a source, the header-keyed rows it normalizes into,
// and the title-based classifier that decides what a tab describes.
//
// Everything in this package is pure. Nothing here reads files or talks to
// the network; see the ingest package for that.
package sheet
