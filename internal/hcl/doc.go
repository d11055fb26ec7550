// Package hcl provides the HCL implementation of config.Loader. It parses
// build files, decodes them with gohcl against an evaluation context that
// offers env() and file(), and translates the result into config.Model.
package hcl
