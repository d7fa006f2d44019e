// Package export writes grouped roster data to disk.
//
// Each class year becomes one CSV file named from a fixed prefix and the year,
// or one sheet in an xlsx workbook. Years are written in ascending order and the
// first failed write stops the export.
package export
