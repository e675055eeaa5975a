// Package eventid generates short opaque event identifiers.
package eventid

import "github.com/google/uuid"

// Length of a generated identifier.
const Length = 8

// New returns a fresh 8-character identifier. Collisions are treated as
// practically impossible for process-lifetime state.
func New() string {
	return uuid.NewString()[:Length]
}
