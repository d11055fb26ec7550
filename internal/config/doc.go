// Package config defines the format-agnostic build configuration and the
// Loader interface that fills it from a build file.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
