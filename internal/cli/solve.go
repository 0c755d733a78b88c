// Package cli — solve.go implements the "dialspin solve" command.
//
// The solve command loads an instruction file, runs the dial simulation,
// and prints the zero-landing count as "Answer: <n>". With --json it
// emits the full result record (answer, final position, zero stops,
// instruction and step totals) for machine consumption.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/dialspin/internal/dial"
	"github.com/mmr-tortoise/dialspin/internal/instruction"
)

// solveFlags holds the resolved inputs for the solve command.
type solveFlags struct {
	// inputPath is the instruction file to solve. Defaults to
	// instruction.DefaultInputFile when no positional argument is given.
	inputPath string
}

// NewSolveCommand creates the "solve" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Simulate the dial and print the zero-landing count",
		Long: `Simulate the dial over an instruction file and print the answer.

The dial starts at position 50 and moves one position per step, wrapping
within 0-99. Every step that lands exactly on position 0 increments the
answer.

Examples:
  dialspin solve
  dialspin solve puzzle/input.txt
  dialspin solve --json`,

		// At most one positional argument: the input file path.
		Args: cobra.MaximumNArgs(1),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := &solveFlags{inputPath: instruction.DefaultInputFile}
			if len(args) == 1 {
				flags.inputPath = args[0]
			}
			return runSolve(flags)
		},
	}

	return cmd
}

// runSolve is the main logic function for the solve command.
// It loads the instruction file, runs the simulation, and outputs the
// result in the appropriate format.
func runSolve(flags *solveFlags) error {
	// Step 1: Load and parse the instruction file. Load already returns
	// CLIError values with the right exit codes (input-not-found,
	// malformed-instruction), so errors pass through unchanged.
	instructions, err := instruction.Load(flags.inputPath)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d instructions from %s", len(instructions), flags.inputPath)

	// Step 2: Run the simulation. One pass, deterministic.
	result := dial.Run(instructions)
	VerboseLog("Simulated %d unit-steps, final position %d", result.Steps, result.FinalPosition)

	// Step 3: Output the result in the appropriate format.
	printSolveResult(result)
	return nil
}

// printSolveResult outputs the simulation result in text or JSON format,
// depending on the global --json flag.
func printSolveResult(result dial.Result) {
	if IsJSONOutput() {
		printSolveResultJSON(result)
	} else {
		fmt.Println(FormatAnswer(result))
	}
}

// solveResultJSON is the JSON output structure for the solve command.
// The per-instruction trace is omitted — that is the trace command's job.
type solveResultJSON struct {
	Answer        int `json:"answer"`
	FinalPosition int `json:"finalPosition"`
	ZeroStops     int `json:"zeroStops"`
	Instructions  int `json:"instructions"`
	Steps         int `json:"steps"`
}

// printSolveResultJSON outputs the solve result as structured JSON.
func printSolveResultJSON(result dial.Result) {
	out := solveResultJSON{
		Answer:        result.Answer,
		FinalPosition: result.FinalPosition,
		ZeroStops:     result.ZeroStops,
		Instructions:  result.Instructions,
		Steps:         result.Steps,
	}

	// MarshalIndent produces human-readable JSON with 2-space indentation.
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// FormatAnswer renders the canonical answer line for a simulation
// result. The format matches the original solver's output exactly:
// "Answer: <n>".
//
// This function is exported for testing purposes (tested in solve_test.go).
func FormatAnswer(result dial.Result) string {
	return fmt.Sprintf("Answer: %d", result.Answer)
}
