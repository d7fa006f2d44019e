// Package cli implements the command-line interface for dcs-roster.
//
// The cli package provides the Cobra-based command that reads a roster page,
// groups its students by class year and by advisor, and either prints three
// summary tables (text or JSON) or writes one file per class year (CSV or an
// xlsx workbook). When no file is given it offers the roster files found in the
// working directory.
package cli
