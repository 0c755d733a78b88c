// Package instruction — parse.go implements the instruction line format.
//
// Line format: a single direction marker byte followed by a decimal
// magnitude, e.g. "L12" or "R3". The marker byte is always consumed,
// even when it is not a letter: "510" decodes as a rightward rotation
// of magnitude 10. Only an uppercase 'L' means left.
//
// The magnitude uses leading-integer semantics: digits are consumed from
// the start of the remainder and scanning stops at the first non-digit.
// A remainder with no leading digits is a parse error.
package instruction

import (
	"fmt"
	"os"
	"strings"

	"github.com/mmr-tortoise/dialspin/internal/model"
)

// DefaultInputFile is the input path used when no explicit file is given.
// The puzzle contract fixes this to "input.txt" in the working directory.
const DefaultInputFile = "input.txt"

// Load reads an instruction file and parses it into an ordered
// instruction list.
//
// Returns a CLIError with ExitInputNotFound if the file does not exist
// or cannot be read; nothing is printed and no partial result is
// produced in that case.
func Load(path string) ([]model.Instruction, error) {
	// os.ReadFile is preferred over os.Open+io.ReadAll because it handles
	// the open-read-close lifecycle in a single call. The file is read
	// whole: instruction files are small and processed in one pass.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitInputNotFound,
				fmt.Sprintf("input file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(
			model.ExitInputNotFound,
			fmt.Sprintf("failed to read input file %s", path),
			err,
		)
	}

	return Parse(data)
}

// Parse decodes raw input file contents into an ordered instruction list.
//
// Normalization before line parsing:
//   - the whole input is trimmed, so a trailing newline or trailing
//     blank lines never yield an empty final entry
//   - lines are split on '\n'; a trailing '\r' on each line is tolerated
//     for CRLF input
//
// Interior blank lines are malformed: the line-oriented format has no
// separator or comment syntax, so an empty line inside the sequence
// means the input is corrupt. Errors carry the 1-based line number.
//
// Empty input (or all-whitespace input) yields an empty instruction
// list, not an error: zero instructions is a valid sequence whose
// answer is zero.
func Parse(data []byte) ([]model.Instruction, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	lines := strings.Split(trimmed, "\n")
	instructions := make([]model.Instruction, 0, len(lines))

	for i, line := range lines {
		inst, err := ParseLine(line)
		if err != nil {
			// Report the 1-based line number of the malformed line.
			// The underlying error already names the defect.
			return nil, model.WrapCLIError(
				model.ExitMalformedInstruction,
				fmt.Sprintf("line %d", i+1),
				err,
			)
		}
		instructions = append(instructions, inst)
	}

	return instructions, nil
}

// ParseLine decodes a single instruction line.
//
// The first byte is the direction marker and is always consumed,
// regardless of its value (see model.ParseDirection). The rest of the
// line must start with at least one decimal digit; scanning stops at
// the first non-digit, so "R12x" decodes as magnitude 12.
func ParseLine(line string) (model.Instruction, error) {
	// Tolerate CRLF input: the line splitter only removes '\n'.
	line = strings.TrimSuffix(line, "\r")

	if line == "" {
		return model.Instruction{}, fmt.Errorf("blank line in instruction sequence")
	}

	dir := model.ParseDirection(line[0])
	magnitude, err := leadingInt(line[1:])
	if err != nil {
		return model.Instruction{}, fmt.Errorf("malformed instruction %q: %w", line, err)
	}

	return model.Instruction{Dir: dir, Magnitude: magnitude}, nil
}

// leadingInt parses the decimal integer at the start of s, stopping at
// the first non-digit byte. At least one digit is required.
func leadingInt(s string) (int, error) {
	n := 0
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if i == 0 {
		return 0, fmt.Errorf("magnitude must start with a digit")
	}
	return n, nil
}
