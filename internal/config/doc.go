// Package config defines the format-agnostic settings and seed models
// for the application, along with the Loader interface through which
// concrete formats (HCL) provide them.
//
// The app layer consumes only these types and the documented layering
// rules; it never touches parser internals. Concrete implementations of
// Loader live in separate packages.
package config
