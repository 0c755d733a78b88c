// Package model defines the domain types for the dialspin CLI.
//
// All entities in this package represent the core data structures of the
// dial puzzle. These types are used throughout the application for passing
// data between components.
//
// Key design decision: instructions are fully reconstructed from the input
// file on every run, so these types are transient representations with no
// persistence concerns.
package model

import (
	"fmt"
	"strings"
)

// Direction represents the rotation direction of a single instruction.
// The dial moves one position per unit-step, either toward lower
// positions (left) or higher positions (right), wrapping at the
// position count.
type Direction string

const (
	// DirectionLeft rotates the dial toward lower positions.
	// Encoded as a leading 'L' on an instruction line.
	DirectionLeft Direction = "left"

	// DirectionRight rotates the dial toward higher positions.
	// Any leading character other than 'L' encodes this direction —
	// the input format performs no validation of the marker.
	DirectionRight Direction = "right"
)

// String returns the string representation of Direction.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (d Direction) String() string {
	return string(d)
}

// IsValid checks whether the Direction value is one of the
// predefined valid directions.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

// Delta returns the per-unit-step position change for the direction:
// -1 for left, +1 for right.
func (d Direction) Delta() int {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Marker returns the single-character input encoding of the direction
// ("L" or "R"), the inverse of ParseDirection for well-formed input.
func (d Direction) Marker() string {
	if d == DirectionLeft {
		return "L"
	}
	return "R"
}

// ParseDirection converts an instruction line's marker byte to a
// Direction. Only an uppercase 'L' means left; every other byte —
// including lowercase 'l' and digits — means right. This mirrors the
// original puzzle input contract, which never validates the marker.
func ParseDirection(marker byte) Direction {
	if marker == 'L' {
		return DirectionLeft
	}
	return DirectionRight
}

// ParseDirectionName converts a direction name string ("left"/"right",
// case-insensitive) to a Direction. Returns an error if the string does
// not match any valid direction. Used for flag parsing, not for
// instruction lines (those use ParseDirection on the marker byte).
func ParseDirectionName(s string) (Direction, error) {
	dir := Direction(strings.ToLower(s))
	if !dir.IsValid() {
		return "", fmt.Errorf("invalid direction: %q (valid: left, right)", s)
	}
	return dir, nil
}

// Instruction represents one parsed input line: a rotation direction
// and the number of unit-steps to take in that direction.
type Instruction struct {
	// Dir is the rotation direction decoded from the line's first byte.
	Dir Direction `json:"direction"`

	// Magnitude is the number of unit-steps, decoded from the leading
	// digits of the line remainder. Always non-negative. A magnitude of
	// zero performs no steps.
	Magnitude int `json:"magnitude"`
}

// String returns the canonical input encoding of the instruction,
// e.g. "L12" or "R3".
func (i Instruction) String() string {
	return fmt.Sprintf("%s%d", i.Dir.Marker(), i.Magnitude)
}

// Validate checks whether the Instruction has valid field values.
func (i Instruction) Validate() error {
	if !i.Dir.IsValid() {
		return fmt.Errorf("instruction: invalid direction %q", string(i.Dir))
	}
	if i.Magnitude < 0 {
		return fmt.Errorf("instruction: magnitude %d must be non-negative", i.Magnitude)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInputNotFound indicates the instruction input file was not
	// found or could not be read.
	ExitInputNotFound ExitCode = 2

	// ExitMalformedInstruction indicates an input line could not be
	// parsed as an instruction.
	ExitMalformedInstruction ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
