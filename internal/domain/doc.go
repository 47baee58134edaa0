// Package domain contains the filename normalization rules for secpad.
//
// This package is the innermost layer. It has no dependencies on the file
// system, logging, or configuration and contains only pure functions over
// directory entry names.
//
// # Entities
//
//   - [Section]: the numeric section parsed from a name like "Sec3_1.js"
//   - [RenamePlan]: an (old, new) pair for an entry whose normalized form differs
//   - [Report]: counts and failures collected while a pass runs
//
// # Rules
//
// A section file matches Sec<digits>, an optional _<digits>, and the literal
// extension .js, with nothing before or after. The base number is zero-padded
// to two digits; the suffix is written as a plain integer.
package domain
