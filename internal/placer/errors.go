package placer

import "errors"

// ErrConflictingCell is returned when a word cannot be inserted into the
// grid without either reusing a cell with a different letter or touching
// a non-blank boundary cell. It re-models the source's exception-as-
// control-flow: the whole plan is discarded by the caller, no panic or
// unwind involved.
var ErrConflictingCell = errors.New("placer: conflicting cell")

// ErrInvalidPlan is returned when a fully (attempted) placement fails
// final validation, or when the plan's edges never fully connect back to
// the seeded word (no progress possible before every edge is consumed).
var ErrInvalidPlan = errors.New("placer: invalid plan")
