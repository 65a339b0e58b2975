package kinematics

import (
	"fmt"
	"math"
	"strconv"
)

// Projectile holds the launch parameters of a projectile. Derived values
// (range, heights) are recomputed from the current parameters on every query.
//
// No validation happens on construction or in the setters: degenerate inputs
// flow straight into the formulas. Call Validate to fail fast instead.
type Projectile struct {
	speed  float64 // m/s
	height float64 // initial height, metres
	angle  float64 // launch angle, radians
}

// NewProjectile creates a Projectile from a speed (m/s), an initial height (m)
// and a launch angle in degrees.
func NewProjectile(speed, height, angleDeg float64) *Projectile {
	return &Projectile{
		speed:  speed,
		height: height,
		angle:  degToRad(angleDeg),
	}
}

func (p *Projectile) Speed() float64     { return p.speed }
func (p *Projectile) SetSpeed(v float64) { p.speed = v }

func (p *Projectile) Height() float64     { return p.height }
func (p *Projectile) SetHeight(h float64) { p.height = h }

// Angle returns the launch angle in whole degrees.
func (p *Projectile) Angle() int { return int(math.RoundToEven(radToDeg(p.angle))) }

// SetAngle sets the launch angle from degrees.
func (p *Projectile) SetAngle(deg float64) { p.angle = degToRad(deg) }

// AngleRadians returns the unrounded internal launch angle.
func (p *Projectile) AngleRadians() float64 { return p.angle }

// Displacement returns the horizontal range in metres.
func (p *Projectile) Displacement() float64 { return p.displacement() }

// displacement is the positive root of the time-of-flight quadratic
// multiplied by the horizontal velocity. A launch height above zero is allowed.
func (p *Projectile) displacement() float64 {
	vx := p.speed * math.Cos(p.angle)
	vy := p.speed * math.Sin(p.angle)
	root := math.Sqrt(vy*vy + 2*GravitationalAcceleration*p.height)
	return vx * (vy + root) / GravitationalAcceleration
}

// heightAt returns the height at horizontal offset x. Undefined (±Inf/NaN)
// for zero speed or a vertical launch.
func (p *Projectile) heightAt(x float64) float64 {
	cos := math.Cos(p.angle)
	drop := GravitationalAcceleration * x * x / (2 * p.speed * p.speed * cos * cos)
	return p.height + math.Tan(p.angle)*x - drop
}

// Coordinates samples the trajectory at every whole metre from the launch
// point up to, but not including, ceil(range). A range of zero or less yields
// an empty slice.
func (p *Projectile) Coordinates() ([]Coordinate, error) {
	d := p.displacement()
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: speed=%g height=%g angle=%g°",
			ErrNonFiniteDisplacement, p.speed, p.height, radToDeg(p.angle))
	}

	n := int(math.Ceil(d))
	if n <= 0 {
		return []Coordinate{}, nil
	}
	coords := make([]Coordinate, n)
	for x := range n {
		coords[x] = Coordinate{X: x, Y: p.heightAt(float64(x))}
	}
	return coords, nil
}

// Validate rejects parameters that the formulas cannot turn into a physical
// trajectory: non-positive speed, negative height, or an angle outside (0°, 90°).
func (p *Projectile) Validate() error {
	switch {
	case math.IsNaN(p.speed) || math.IsInf(p.speed, 0):
		return &InvalidParameterError{Param: "speed", Value: p.speed, Reason: "must be finite"}
	case p.speed <= 0:
		return &InvalidParameterError{Param: "speed", Value: p.speed, Reason: "must be positive"}
	case math.IsNaN(p.height) || math.IsInf(p.height, 0):
		return &InvalidParameterError{Param: "height", Value: p.height, Reason: "must be finite"}
	case p.height < 0:
		return &InvalidParameterError{Param: "height", Value: p.height, Reason: "must not be negative"}
	case math.IsNaN(p.angle) || p.angle <= 0 || math.Cos(p.angle) < 1e-12:
		return &InvalidParameterError{Param: "angle", Value: radToDeg(p.angle), Reason: "must be between 0° and 90° exclusive"}
	}
	return nil
}

// String returns the multi-line summary shown to the user.
func (p *Projectile) String() string {
	return fmt.Sprintf("\nProjectile details:\nspeed: %s m/s\nheight: %s m\nangle: %d°\ndisplacement: %s m\n",
		formatNumber(p.speed), formatNumber(p.height), p.Angle(), strconv.FormatFloat(roundTo(p.displacement(), 1), 'f', 1, 64))
}

func (p *Projectile) GoString() string {
	return fmt.Sprintf("kinematics.Projectile(%s, %s, %d)", formatNumber(p.speed), formatNumber(p.height), p.Angle())
}

// Each conversion multiplies by one precomputed factor, so 52.5° reads back
// as 52.50000000000001° and Angle reports 53.
func degToRad(deg float64) float64 { return deg * (math.Pi / 180) }
func radToDeg(rad float64) float64 { return rad * (180 / math.Pi) }

// roundTo rounds half to even at the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
