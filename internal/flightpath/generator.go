package flightpath

import "math"

// DefaultSampleCount is the number of segments sampled for spiral and
// elastic paths when the caller has no better value.
const DefaultSampleCount = 60

// ParabolaTimes are the normalized times of the three parabola samples.
// X and Y share them so both axes stay aligned.
var ParabolaTimes = [3]float64{0, 0.5, 1}

// GeneratePathKeyframes samples the flight path for the given path type.
//
// It returns nil for PathStraight and PathParabola (see
// CalculateParabolaYAnimation for the closed-form parabola track) and
// for unknown path types. A sampleCount below 1 is clamped to 1 and a
// spiralTurns below 1 is clamped to 1.
//
// Example:
//
//	kf := flightpath.GeneratePathKeyframes(flightpath.PathSpiral, 300, -200, 150, 60, 2)
//	// kf.X[60] == 300, kf.Y[60] == -200, kf.Times[60] == 1
func GeneratePathKeyframes(
	pathType PathType,
	distanceX, distanceY float64,
	pathHeight float64,
	sampleCount int,
	spiralTurns int,
) *PathKeyframes {
	if sampleCount < 1 {
		sampleCount = 1
	}

	switch pathType {
	case PathSpiral:
		if spiralTurns < 1 {
			spiralTurns = 1
		}
		return generateSpiralPath(distanceX, distanceY, pathHeight, sampleCount, spiralTurns)
	case PathElastic:
		return generateElasticPath(distanceX, distanceY, pathHeight, sampleCount)
	}
	return nil
}

// newKeyframes allocates a keyframe set anchored at (0, 0, t=0).
func newKeyframes(sampleCount int) *PathKeyframes {
	n := sampleCount + 1
	kf := &PathKeyframes{
		X:     make([]float64, 1, n),
		Y:     make([]float64, 1, n),
		Times: make([]float64, 1, n),
	}
	return kf
}

// pinEnd forces the final sample onto the exact target. The formulas
// already land there, but sin/cos leave residue around 1e-14.
func pinEnd(kf *PathKeyframes, distanceX, distanceY float64) {
	last := len(kf.Times) - 1
	kf.X[last] = distanceX
	kf.Y[last] = distanceY
	kf.Times[last] = 1
}

// generateSpiralPath circles around the straight line from origin to target.
// The radius decays linearly to zero so the spiral tightens into the target.
func generateSpiralPath(distanceX, distanceY, pathHeight float64, sampleCount, spiralTurns int) *PathKeyframes {
	kf := newKeyframes(sampleCount)

	for i := 1; i <= sampleCount; i++ {
		progress := float64(i) / float64(sampleCount)
		angle := progress * float64(spiralTurns) * math.Pi * 2
		radius := pathHeight * (1 - progress)

		kf.X = append(kf.X, distanceX*progress+math.Cos(angle)*radius)
		kf.Y = append(kf.Y, distanceY*progress+math.Sin(angle)*radius)
		kf.Times = append(kf.Times, progress)
	}

	pinEnd(kf, distanceX, distanceY)
	return kf
}

// generateElasticPath moves along a cubic ease-out and adds a decaying
// vertical oscillation with two full cycles.
func generateElasticPath(distanceX, distanceY, pathHeight float64, sampleCount int) *PathKeyframes {
	kf := newKeyframes(sampleCount)

	for i := 1; i <= sampleCount; i++ {
		progress := float64(i) / float64(sampleCount)
		elasticFactor := 1 - math.Pow(1-progress, 3)
		elasticBounce := math.Sin(progress*math.Pi*4) * pathHeight * (1 - progress)

		kf.X = append(kf.X, distanceX*elasticFactor)
		kf.Y = append(kf.Y, distanceY*elasticFactor+elasticBounce)
		kf.Times = append(kf.Times, progress)
	}

	pinEnd(kf, distanceX, distanceY)
	return kf
}

// CalculateParabolaYAnimation returns the three Y samples of a parabola
// path: start, displaced midpoint and end. The midpoint is pushed by
// pathHeight against the direction of travel; a distanceY of exactly 0
// counts as downward travel, so the arc bulges upward.
func CalculateParabolaYAnimation(distanceY, pathHeight float64) [3]float64 {
	offset := pathHeight
	if distanceY < 0 {
		offset = -pathHeight
	}
	return [3]float64{0, distanceY*0.5 - offset, distanceY}
}

// ParabolaXAnimation returns the X samples matching ParabolaTimes. X
// still travels in a straight line.
func ParabolaXAnimation(distanceX float64) [3]float64 {
	return [3]float64{0, distanceX * 0.5, distanceX}
}

// UsesParabola reports whether a parabola track should be used. A parabola
// with no height degrades to a straight path.
func UsesParabola(pathType PathType, pathHeight float64) bool {
	return pathType == PathParabola && pathHeight > 0
}

// CalculateRotationDirection returns -1 when the element travels left and
// 1 otherwise. A distanceX of exactly 0 resolves to 1.
func CalculateRotationDirection(distanceX float64) int {
	if distanceX < 0 {
		return -1
	}
	return 1
}
