// Package flightpath computes the motion paths used by the fly-to-cart
// animation. Given the displacement between the product and the cart, a
// named path type and a few shape parameters, it produces explicit
// time-sampled keyframes that a declarative renderer can interpolate.
//
// Straight and parabola paths have closed-form tracks and never produce
// sampled keyframes; spiral and elastic paths are sampled.
package flightpath

// PathType names the shape of the flight path.
type PathType string

const (
	// PathStraight interpolates directly from the origin to the target.
	PathStraight PathType = "straight"
	// PathParabola bends the Y track through a displaced midpoint.
	PathParabola PathType = "parabola"
	// PathSpiral circles around the straight line with a shrinking radius.
	PathSpiral PathType = "spiral"
	// PathElastic eases out along the line while bouncing on the Y axis.
	PathElastic PathType = "elastic"
)

// Valid reports whether p is one of the known path types.
func (p PathType) Valid() bool {
	switch p {
	case PathStraight, PathParabola, PathSpiral, PathElastic:
		return true
	}
	return false
}

// PathKeyframes is an ordered set of samples for the X and Y offsets of a
// flying element. All three slices have the same length (sampleCount+1).
// Times are normalized to [0, 1], strictly increasing, with Times[0] == 0
// and Times[len-1] == 1.
type PathKeyframes struct {
	// X is the horizontal offset from the origin at each sample
	X []float64 `yaml:"x"`

	// Y is the vertical offset from the origin at each sample
	Y []float64 `yaml:"y"`

	// Times is the normalized time of each sample
	Times []float64 `yaml:"times"`
}

// Len returns the number of samples.
func (k *PathKeyframes) Len() int {
	return len(k.Times)
}
