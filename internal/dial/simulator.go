package dial

import (
	"fmt"

	"github.com/mmr-tortoise/dialspin/internal/model"
)

const (
	// Positions is the number of positions on the dial. Valid positions
	// are 0 through Positions-1; stepping past either end wraps.
	Positions = 100

	// StartPosition is the dial position before any instruction runs.
	// The puzzle fixes this to 50.
	StartPosition = 50
)

// Simulator holds the dial position and the counters accumulated while
// applying instructions. The zero value is not usable — construct with
// NewSimulator so the dial starts at StartPosition.
//
// A Simulator is single-use state for one run: apply an instruction
// sequence, read the Result, discard.
type Simulator struct {
	// position is the current dial position, always in [0, Positions).
	position int

	// zeroHits counts every unit-step that lands the dial on position 0.
	// This is the puzzle answer.
	zeroHits int

	// zeroStops counts instructions whose final position is 0 — a
	// coarser statistic observable from the same pass, reported in
	// trace and JSON output.
	zeroStops int

	// steps is the total number of unit-steps taken across all
	// applied instructions.
	steps int
}

// InstructionResult records the effect of a single applied instruction.
type InstructionResult struct {
	// Instruction is the instruction that was applied.
	Instruction model.Instruction `json:"instruction"`

	// From is the dial position before the instruction ran.
	From int `json:"from"`

	// To is the dial position after the instruction ran.
	To int `json:"to"`

	// ZeroHits counts the unit-steps within this instruction that
	// landed the dial on position 0.
	ZeroHits int `json:"zeroHits"`
}

// String returns a human-readable summary of the applied instruction,
// e.g. "L50: 50 → 0 (1 zero)".
func (r InstructionResult) String() string {
	noun := "zeros"
	if r.ZeroHits == 1 {
		noun = "zero"
	}
	return fmt.Sprintf("%s: %d → %d (%d %s)", r.Instruction, r.From, r.To, r.ZeroHits, noun)
}

// Result is the outcome of running a full instruction sequence.
type Result struct {
	// Answer is the total number of unit-steps that landed the dial on
	// position 0 — the puzzle's sole required output.
	Answer int `json:"answer"`

	// FinalPosition is the dial position after the last instruction.
	FinalPosition int `json:"finalPosition"`

	// ZeroStops counts instructions that ended with the dial on 0.
	ZeroStops int `json:"zeroStops"`

	// Instructions is the number of instructions applied.
	Instructions int `json:"instructions"`

	// Steps is the total number of unit-steps taken.
	Steps int `json:"steps"`

	// Trace holds the per-instruction results in application order.
	Trace []InstructionResult `json:"trace,omitempty"`
}

// NewSimulator creates a Simulator with the dial at StartPosition and
// all counters at zero.
func NewSimulator() *Simulator {
	return &Simulator{
		position: StartPosition,
	}
}

// Position returns the current dial position.
func (s *Simulator) Position() int {
	return s.position
}

// ZeroHits returns the number of unit-steps so far that landed the
// dial on position 0.
func (s *Simulator) ZeroHits() int {
	return s.zeroHits
}

// Apply runs a single instruction, stepping the dial one unit at a
// time in the instruction's direction and counting every landing on
// position 0.
//
// Each unit-step computes
//
//	position = (position + delta + Positions) % Positions
//
// with delta ∈ {-1, +1}. Adding Positions before the modulo keeps the
// intermediate sum non-negative for leftward steps, so the result is
// always in [0, Positions). A magnitude of 0 performs no steps and
// cannot change any counter.
func (s *Simulator) Apply(inst model.Instruction) InstructionResult {
	result := InstructionResult{
		Instruction: inst,
		From:        s.position,
	}

	delta := inst.Dir.Delta()
	for i := 0; i < inst.Magnitude; i++ {
		s.position = (s.position + delta + Positions) % Positions
		if s.position == 0 {
			result.ZeroHits++
		}
	}

	s.zeroHits += result.ZeroHits
	s.steps += inst.Magnitude
	if s.position == 0 {
		s.zeroStops++
	}

	result.To = s.position
	return result
}

// Run applies all instructions in order and returns the accumulated
// Result, including the per-instruction trace.
func (s *Simulator) Run(instructions []model.Instruction) Result {
	trace := make([]InstructionResult, 0, len(instructions))
	for _, inst := range instructions {
		trace = append(trace, s.Apply(inst))
	}

	return Result{
		Answer:        s.zeroHits,
		FinalPosition: s.position,
		ZeroStops:     s.zeroStops,
		Instructions:  len(instructions),
		Steps:         s.steps,
		Trace:         trace,
	}
}

// Run is a convenience wrapper that simulates a full instruction
// sequence on a fresh dial.
func Run(instructions []model.Instruction) Result {
	return NewSimulator().Run(instructions)
}
