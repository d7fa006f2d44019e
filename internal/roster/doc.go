// Package roster locates the student table in a roster HTML page and decodes its rows.
//
// The roster page is an unversioned external format. The table is found by its id
// attribute, and each data row is decoded by fixed cell position (see Layout).
// Multi-valued cells carry one abbr element per program whose title attribute holds
// the full program name. The advisor cell carries the name in a nested element next
// to a visually hidden duplicate, so only the nested element's text is read.
package roster
