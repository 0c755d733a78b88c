// Package instruction handles loading and parsing of the puzzle input file.
//
// The input is a plain-text file with one instruction per line. Each line
// starts with a single direction marker byte ('L' for left, anything else
// for right) followed by a decimal magnitude. The package normalizes the
// raw file contents (whole-input trim, newline split, carriage-return
// tolerance) and produces ordered model.Instruction values.
//
// Parse errors are reported as model.CLIError values carrying
// ExitMalformedInstruction and the offending 1-based line number;
// a missing input file is reported with ExitInputNotFound.
package instruction
