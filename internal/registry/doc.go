// Package registry provides the central "glue" for the module system.
//
// Compiled-in modules register the platforms they generate for and the
// sinks that can persist artifacts. At startup the registry is validated
// against the build configuration so that a misspelled platform or sink
// fails before any spreadsheet is fetched.
package registry
