// Package line sizes the equipment of a dumpling production line.
//
// # Reading Guide
//
//   - calc.go: the five stage formulas (throughputs, filling share, machine count)
//   - inputs.go: the ten input quantities and their validation
//   - plan.go: Compute, which chains the three stages into a Plan
//   - report.go: text and YAML rendering of a Plan
//
// # Stages
//
// The primary line runs two shifts a day, so its throughput is the daily output
// divided by twice the shift duration. The dough and filling preparation lines
// process their mass share of that throughput. Every machine count is the stage
// throughput divided by the per-machine rate, rounded up.
//
// All functions are pure. Invalid values are reported as errors wrapping
// ErrInvalidInput; no function returns Inf or NaN.
package line
