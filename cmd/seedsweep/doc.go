// Package seedsweep provides the command-line interface for the
// seedsweep exposure scanner. It configures subcommands (scan, kinds,
// history, gendocs), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/seedsweep/seedsweep/cmd/seedsweep"
//	func main() { seedsweep.Execute() }
package seedsweep
