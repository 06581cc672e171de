// Package models defines the manifest data shapes: the raw definition table and its
// loosely-typed entries, the normalised weapon and plug records written as artifacts,
// the manifest index, and the run history row.
package models
