// Package report renders scan reports for terminals: the grouped text layout
// and a table view.
package report
