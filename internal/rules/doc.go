// Package rules implements the line classifiers used by assat. A Set is an
// ordered list of named regular expressions; a line belongs to the category of
// the first rule that matches anywhere in it.
package rules
