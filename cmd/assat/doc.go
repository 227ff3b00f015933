// Package assat provides the command-line interface for assat. The root
// command runs a static scan over a decompiled source tree; subcommands list
// rule sets, write a starter config and print the version.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/assat/assat/cmd/assat"
//	func main() { assat.Execute() }
package assat
