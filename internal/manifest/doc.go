// Package manifest builds the per-locale publishing manifest: the
// environment-specific text (descriptions, sample invocations and so on)
// authored in Publishing tabs.
//
// A manifest is assembled from a base layer (rows with no environment) and
// an overlay layer (rows for one environment) and deep-merged with Merge.
package manifest
