// Package student provides the decoded student record and the groupings built over it.
//
// A Student is an immutable value holding one roster row. Group walks a slice of
// students once and builds two ordered multimaps, one keyed by class year and one
// keyed by advisor, preserving the order in which students were encountered.
package student
