// Package hclconf provides the concrete HCL implementation for the
// configuration loading interfaces defined in the config package. It is
// responsible for parsing the optional settings file and the seed
// catalog files, and for converting HCL data objects into the native Go
// values used as node payloads.
package hclconf
