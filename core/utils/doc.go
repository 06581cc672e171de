// Package utils provides small helpers shared across packages: definition hash
// formatting and parsing, and lenient boolean parsing for flags and query strings.
package utils
