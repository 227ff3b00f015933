// Package engine contains the core scanning logic for assat. It pulls files
// from a source iterator, classifies every line against one rule set and
// returns the grouped matches. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
