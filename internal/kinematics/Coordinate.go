// Package kinematics computes the closed-form trajectory of a projectile
// launched under constant gravity with no air resistance.
//
// Distances are in metres, velocities in m/s. Angles are accepted and
// reported in degrees but held internally in radians.
package kinematics

import (
	"errors"
	"fmt"
)

// GravitationalAcceleration is the constant downward acceleration, m/s².
const GravitationalAcceleration = 9.81

// ErrNonFiniteDisplacement is returned when the launch parameters drive the
// range formula to NaN or ±Inf (e.g. a negative argument under the square root).
var ErrNonFiniteDisplacement = errors.New("kinematics: displacement is not finite")

// Coordinate is one trajectory sample: the height y (metres) at horizontal
// step x (metres from the launch point).
type Coordinate struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

// InvalidParameterError reports a launch parameter rejected by Validate.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Param, e.Value, e.Reason)
}
