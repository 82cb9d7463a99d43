package geo

import (
	"fmt"
	"math"

	"periph.io/x/periph/conn/physic"
)

// EarthRadiusM is the mean Earth radius used by the local projection.
const EarthRadiusM = 6371000.0

// Point is a geographic position in decimal degrees.
type Point struct {
	Lat  float64 `yaml:"lat"`
	Long float64 `yaml:"long"`
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Long >= -180 && p.Long <= 180 &&
		!math.IsNaN(p.Lat) && !math.IsNaN(p.Long)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Long)
}

// Local is an offset from the map origin, east and north positive.
type Local struct {
	East  physic.Distance
	North physic.Distance
}

func (l Local) String() string {
	return fmt.Sprintf("E%s N%s", l.East, l.North)
}

// Frame converts between geographic points and offsets from a fixed origin using an
// equirectangular projection.  Only valid within a few kilometres of the origin.
type Frame struct {
	origin           Point
	metresPerDegLat  float64
	metresPerDegLong float64
}

func NewFrame(origin Point) Frame {
	mPerDeg := EarthRadiusM * math.Pi / 180
	return Frame{
		origin:           origin,
		metresPerDegLat:  mPerDeg,
		metresPerDegLong: mPerDeg * math.Cos(origin.Lat*math.Pi/180),
	}
}

func (f Frame) Origin() Point {
	return f.origin
}

func (f Frame) ToLocal(p Point) Local {
	east := (p.Long - f.origin.Long) * f.metresPerDegLong
	north := (p.Lat - f.origin.Lat) * f.metresPerDegLat
	return Local{
		East:  metres(east),
		North: metres(north),
	}
}

func (f Frame) ToGlobal(l Local) Point {
	p := Point{Lat: f.origin.Lat, Long: f.origin.Long}
	p.Lat += toMetres(l.North) / f.metresPerDegLat
	if f.metresPerDegLong != 0 {
		p.Long += toMetres(l.East) / f.metresPerDegLong
	}
	return p
}

// Bearing returns the compass bearing from one local position to another, in degrees
// clockwise from north, range [0, 360).
func Bearing(from, to Local) float64 {
	dE := toMetres(to.East - from.East)
	dN := toMetres(to.North - from.North)
	b := math.Atan2(dE, dN) * 180 / math.Pi
	if b < 0 {
		b += 360
	}
	if b >= 360 {
		b -= 360
	}
	return b
}

// Distance returns the straight line distance between two local positions.
func Distance(from, to Local) physic.Distance {
	dE := toMetres(to.East - from.East)
	dN := toMetres(to.North - from.North)
	return metres(math.Hypot(dE, dN))
}

func metres(m float64) physic.Distance {
	return physic.Distance(math.Round(m * float64(physic.Metre)))
}

func toMetres(d physic.Distance) float64 {
	return float64(d) / float64(physic.Metre)
}
