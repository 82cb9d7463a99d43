// Package settings holds the high-level board's vehicle parameters: debug toggles, mission
// sizing, the map origin and the motion setpoints.  The compiled-in values are authoritative;
// a YAML file may override them once at start up, after which they never change.
package settings

import (
	"periph.io/x/periph/conn/physic"

	"github.com/elcano/go-highlevel/pkg/geo"
)

// CANFramePayloadLen is the data-field width of the frames exchanged with the low-level
// boards.
const CANFramePayloadLen = 16

// Named map origins.  The UWB map origin is the one the vehicle normally runs with; the
// soccer field origin is the centre of the UWB soccer field.
const (
	PresetUWBMap      = "uwb-map"
	PresetSoccerField = "soccer-field"
)

const (
	uwbMapLat       = 47.758949
	uwbMapLong      = -122.190746
	soccerFieldLat  = 47.760850
	soccerFieldLong = -122.190044
)

// OriginPreset returns the coordinates of a named origin.
func OriginPreset(name string) (geo.Point, bool) {
	switch name {
	case PresetUWBMap:
		return geo.Point{Lat: uwbMapLat, Long: uwbMapLong}, true
	case PresetSoccerField:
		return geo.Point{Lat: soccerFieldLat, Long: soccerFieldLong}, true
	}
	return geo.Point{}, false
}

type Debug struct {
	// General covers method entry and test progress.
	General bool `yaml:"general"`
	C4      bool `yaml:"c4"`
	// CAN traces frames sent to and received from the bus.
	CAN bool `yaml:"can"`
	// Nav traces navigation and pilot decisions (which direction the vehicle was told to
	// travel).
	Nav bool `yaml:"nav"`
}

type Mission struct {
	// Cones is the number of mission points.  Update it for each new area.
	Cones        int `yaml:"cones"`
	MaxWaypoints int `yaml:"max_waypoints"`
}

type Origin struct {
	// Preset, if set, names one of the known origins and overrides Lat/Long.
	Preset string  `yaml:"preset,omitempty"`
	Lat    float64 `yaml:"lat"`
	Long   float64 `yaml:"long"`
}

func (o Origin) Point() geo.Point {
	return geo.Point{Lat: o.Lat, Long: o.Long}
}

type CAN struct {
	FramePayloadLen int `yaml:"frame_payload_len"`
}

type Motion struct {
	TurnRadiusMM       int `yaml:"turn_radius_mm"`
	MinTurningRadiusMM int `yaml:"min_turning_radius_mm"`
	// TurnSpeed is in the drive board's own speed units, not mm/s.
	TurnSpeed        int `yaml:"turn_speed"`
	DesiredSpeedMMPS int `yaml:"desired_speed_mmps"`
}

const milliMetrePerSecond = physic.MetrePerSecond / 1000

func (m Motion) TurnRadius() physic.Distance {
	return physic.Distance(m.TurnRadiusMM) * physic.MilliMetre
}

func (m Motion) MinTurningRadius() physic.Distance {
	return physic.Distance(m.MinTurningRadiusMM) * physic.MilliMetre
}

func (m Motion) DesiredSpeed() physic.Speed {
	return physic.Speed(m.DesiredSpeedMMPS) * milliMetrePerSecond
}

type Settings struct {
	Debug   Debug   `yaml:"debug"`
	Mission Mission `yaml:"mission"`
	Origin  Origin  `yaml:"origin"`
	CAN     CAN     `yaml:"can"`
	Motion  Motion  `yaml:"motion"`
}

// Default returns the compiled-in settings.
func Default() Settings {
	return Settings{
		Debug: Debug{
			General: true,
			C4:      false,
			CAN:     true,
			Nav:     true,
		},
		Mission: Mission{
			Cones:        6,
			MaxWaypoints: 50,
		},
		Origin: Origin{
			Lat:  uwbMapLat,
			Long: uwbMapLong,
		},
		CAN: CAN{
			FramePayloadLen: CANFramePayloadLen,
		},
		Motion: Motion{
			TurnRadiusMM:       1000,
			MinTurningRadiusMM: 1000,
			TurnSpeed:          1050,
			DesiredSpeedMMPS:   1600,
		},
	}
}
