package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDirection_String verifies that Direction values produce the expected
// string representations for CLI output and JSON serialization.
func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirectionLeft, "left"},
		{DirectionRight, "right"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dir.String())
		})
	}
}

// TestDirection_IsValid checks that only defined direction values pass validation.
func TestDirection_IsValid(t *testing.T) {
	assert.True(t, DirectionLeft.IsValid())
	assert.True(t, DirectionRight.IsValid())
	assert.False(t, Direction("up").IsValid())
	assert.False(t, Direction("").IsValid())
}

// TestDirection_Delta verifies the per-unit-step position change:
// left moves the dial down by one, right moves it up by one.
func TestDirection_Delta(t *testing.T) {
	assert.Equal(t, -1, DirectionLeft.Delta())
	assert.Equal(t, 1, DirectionRight.Delta())
}

// TestParseDirection verifies marker-byte decoding. Only an uppercase 'L'
// means left; every other byte means right, including lowercase 'l' and
// digits — the input format performs no validation of the marker.
func TestParseDirection(t *testing.T) {
	tests := []struct {
		marker   byte
		expected Direction
	}{
		{'L', DirectionLeft},
		{'R', DirectionRight},
		{'l', DirectionRight}, // lowercase is not a left marker
		{'X', DirectionRight}, // arbitrary letter implies right
		{'5', DirectionRight}, // digit marker implies right
	}

	for _, tt := range tests {
		t.Run(string(tt.marker), func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDirection(tt.marker))
		})
	}
}

// TestParseDirectionName verifies string-to-direction conversion,
// including case normalization and error cases.
func TestParseDirectionName(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
		hasError bool
	}{
		{"left", DirectionLeft, false},
		{"right", DirectionRight, false},
		{"Left", DirectionLeft, false},   // case insensitive
		{"RIGHT", DirectionRight, false}, // case insensitive
		{"sideways", "", true},           // unknown value
		{"", "", true},                   // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseDirectionName(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestInstruction_String verifies the canonical input encoding,
// which round-trips with the line format the parser accepts.
func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "L12", Instruction{Dir: DirectionLeft, Magnitude: 12}.String())
	assert.Equal(t, "R3", Instruction{Dir: DirectionRight, Magnitude: 3}.String())
	assert.Equal(t, "R0", Instruction{Dir: DirectionRight, Magnitude: 0}.String())
}

// TestInstruction_Validate checks field validation for direction and magnitude.
func TestInstruction_Validate(t *testing.T) {
	// A well-formed instruction passes.
	assert.NoError(t, Instruction{Dir: DirectionLeft, Magnitude: 5}.Validate())

	// Zero magnitude is explicitly allowed — it performs no steps.
	assert.NoError(t, Instruction{Dir: DirectionRight, Magnitude: 0}.Validate())

	// Negative magnitude is rejected.
	err := Instruction{Dir: DirectionRight, Magnitude: -1}.Validate()
	assert.Error(t, err)

	// An undefined direction is rejected.
	err = Instruction{Dir: Direction("up"), Magnitude: 1}.Validate()
	assert.Error(t, err)
}

// TestCLIError_ErrorAndUnwrap verifies message formatting and
// errors.Is/errors.As compatibility of the CLIError chain.
func TestCLIError_ErrorAndUnwrap(t *testing.T) {
	underlying := fmt.Errorf("open input.txt: no such file")

	wrapped := WrapCLIError(ExitInputNotFound, "input file not found", underlying)
	assert.Equal(t, "input file not found: open input.txt: no such file", wrapped.Error())
	assert.Equal(t, ExitInputNotFound, wrapped.Code)

	// Unwrap exposes the underlying error to errors.Is.
	assert.True(t, errors.Is(wrapped, underlying))

	// Without an underlying error, Error returns just the message.
	plain := NewCLIError(ExitMalformedInstruction, "line 3: no digits")
	assert.Equal(t, "line 3: no digits", plain.Error())
	assert.Nil(t, plain.Unwrap())
}

// TestCLIError_As verifies that a CLIError can be recovered from a
// wrapped chain via errors.As, which is how the CLI boundary extracts
// exit codes.
func TestCLIError_As(t *testing.T) {
	err := fmt.Errorf("loading instructions: %w",
		NewCLIError(ExitInputNotFound, "input file not found"))

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr), "error should be a *CLIError")
	assert.Equal(t, ExitInputNotFound, cliErr.Code)
}
