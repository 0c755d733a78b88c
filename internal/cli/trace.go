// Package cli — trace.go implements the "dialspin trace" command.
//
// The trace command runs the same simulation as solve but prints one
// row per instruction: the instruction, the dial positions before and
// after it, and how many of its unit-steps landed on position 0. The
// answer line follows the table. With --json the full result record,
// including the trace array, is emitted instead.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/dialspin/internal/dial"
	"github.com/mmr-tortoise/dialspin/internal/instruction"
)

// NewTraceCommand creates the "trace" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewTraceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Show the per-instruction dial movement",
		Long: `Simulate the dial and show the effect of every instruction.

Each row lists the instruction, the dial position before and after it,
and the number of its steps that landed on position 0. The answer line
is printed after the table.

Examples:
  dialspin trace
  dialspin trace puzzle/input.txt
  dialspin trace --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := instruction.DefaultInputFile
			if len(args) == 1 {
				inputPath = args[0]
			}
			return runTrace(inputPath)
		},
	}

	return cmd
}

// runTrace is the main logic function for the trace command.
func runTrace(inputPath string) error {
	instructions, err := instruction.Load(inputPath)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d instructions from %s", len(instructions), inputPath)

	result := dial.Run(instructions)

	if IsJSONOutput() {
		printTraceResultJSON(result)
	} else {
		printTraceResultText(result)
	}
	return nil
}

// printTraceResultJSON outputs the full result record, trace included.
// dial.Result already carries JSON tags, so it is marshalled directly.
func printTraceResultJSON(result dial.Result) {
	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printTraceResultText outputs the per-instruction trace as a
// human-readable text table with aligned columns, followed by the
// answer line.
//
// The table format is:
//
//	#     INSTRUCTION  FROM  TO    ZEROS
//	1     L50          50    0     1
//	2     R1           0     1     0
//	Answer: 1
func printTraceResultText(result dial.Result) {
	if len(result.Trace) == 0 {
		fmt.Println("No instructions found.")
		fmt.Println(FormatAnswer(result))
		return
	}

	// Print header row.
	fmt.Printf("%-5s %-12s %-5s %-5s %s\n",
		"#", "INSTRUCTION", "FROM", "TO", "ZEROS")

	for i, step := range result.Trace {
		// Print one row per instruction with fixed-width columns.
		fmt.Printf("%-5d %-12s %-5d %-5d %d\n",
			i+1,
			step.Instruction.String(),
			step.From,
			step.To,
			step.ZeroHits,
		)
	}

	fmt.Println(FormatAnswer(result))
}
