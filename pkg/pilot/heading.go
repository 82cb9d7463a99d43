package pilot

import "math"

// Heading is a relative angle in degrees, range (-180, 180].  Positive is clockwise, so a
// positive heading error means turn right.
type Heading float64

// HeadingFromFloat takes f mod 360 and shifts it into range.
func HeadingFromFloat(f float64) Heading {
	d := math.Mod(f, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return Heading(d)
}

// TurnTo returns the shortest turn from a compass heading onto a compass bearing.
func TurnTo(heading, bearing float64) Heading {
	return HeadingFromFloat(bearing - heading)
}

func (h Heading) Add(o Heading) Heading {
	return HeadingFromFloat(float64(h) + float64(o))
}

func (h Heading) Sub(o Heading) Heading {
	return HeadingFromFloat(float64(h) - float64(o))
}

func (h Heading) Float() float64 {
	return float64(h)
}

// Compass returns the heading as a compass bearing, range [0, 360).
func (h Heading) Compass() float64 {
	if h < 0 {
		return float64(h) + 360
	}
	return float64(h)
}

// Direction is the way to steer to correct this heading error; errors within threshold
// degrees count as straight ahead.
func (h Heading) Direction(threshold float64) Direction {
	switch {
	case float64(h) > threshold:
		return Right
	case float64(h) < -threshold:
		return Left
	}
	return Straight
}
