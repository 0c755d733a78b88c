// Package model defines the domain types and value objects for the
// dialspin CLI.
//
// This package contains pure data structures with no external dependencies.
// The entities (Direction, Instruction) are transient representations of
// one puzzle input, reconstructed from the input file on every run —
// there are no persistent state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
