// Package interaction turns classified sheets into the typed interaction
// model: intents with their samples and slots, invocations (the locale and
// environment pairs to build), and the content tabs (views, synonyms and
// downloads).
//
// Extraction is lenient. A row that lacks a field yields the zero value for
// it; nothing here returns an error.
package interaction
