// Package cli parses command-line arguments into an app.Config and maps
// invalid input onto process exit codes.
package cli
