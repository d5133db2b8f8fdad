// Package scenario drives a gridsearch.Grid from a YAML file or from
// command lines and captures the resulting engine state as JSON.
//
// A scenario file:
//
//	columns: 15
//	rows: 15
//	start: [3, 3]
//	goal: [8, 8]
//	strategy: cost-first
//	walls:
//	  - [5, 2]
//	  - {i: 5, j: 3}
//	commands:
//	  - step 3
//	  - to-end
//	  - back
//
// Omitted fields take the reference configuration (15×15, start (3,3),
// goal (8,8), cost-first). ParseCommand documents the command vocabulary,
// which the interactive session of the CLI shares.
//
// Errors:
//
//   - ErrBadCommand: unknown command, bad argument count or flag.
//   - ErrBadCoord:   a cell that is not two integers.
//
// Engine errors (gridsearch.ErrInvalidIndex, ...) are wrapped with the
// failing command's position and remain matchable with errors.Is.
package scenario
