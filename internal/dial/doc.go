// Package dial implements the circular dial simulation.
//
// The dial has 100 positions (0-99) and starts at 50. Instructions
// rotate it one unit-step at a time, wrapping at either end, and a
// counter records every unit-step that lands the dial exactly on
// position 0. The final counter value is the puzzle answer.
//
// The simulation is single-threaded and deterministic: the same
// instruction sequence always produces the same Result.
package dial
