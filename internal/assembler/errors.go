package assembler

import "errors"

// ErrNoLayoutFound is returned when MAX_RETRIES full attempts (pick, build
// graph, sample, place) fail to produce any valid grid.
var ErrNoLayoutFound = errors.New("assembler: no layout found")
