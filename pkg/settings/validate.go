package settings

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrInvalid is the cause of every error returned by Validate.
var ErrInvalid = errors.New("invalid vehicle settings")

type number interface {
	constraints.Integer | constraints.Float
}

type problems []string

func positive[T number](p *problems, name string, v T) {
	if v <= 0 {
		*p = append(*p, fmt.Sprintf("%s must be positive, got %v", name, v))
	}
}

func within[T number](p *problems, name string, v, lo, hi T) {
	if v < lo || v > hi || math.IsNaN(float64(v)) {
		*p = append(*p, fmt.Sprintf("%s must be in [%v, %v], got %v", name, lo, hi, v))
	}
}

// Validate checks the settings' invariants.  All violations are reported together.
func (s Settings) Validate() error {
	var p problems

	positive(&p, "mission.cones", s.Mission.Cones)
	positive(&p, "mission.max_waypoints", s.Mission.MaxWaypoints)
	if s.Mission.Cones > s.Mission.MaxWaypoints {
		p = append(p, fmt.Sprintf("mission.cones (%d) exceeds mission.max_waypoints (%d)",
			s.Mission.Cones, s.Mission.MaxWaypoints))
	}

	within(&p, "origin.lat", s.Origin.Lat, -90, 90)
	within(&p, "origin.long", s.Origin.Long, -180, 180)
	if s.Origin.Preset != "" {
		if preset, ok := OriginPreset(s.Origin.Preset); !ok {
			p = append(p, fmt.Sprintf("unknown origin.preset %q", s.Origin.Preset))
		} else if preset != s.Origin.Point() {
			p = append(p, fmt.Sprintf("origin %v does not match origin.preset %q %v",
				s.Origin.Point(), s.Origin.Preset, preset))
		}
	}

	if s.CAN.FramePayloadLen != CANFramePayloadLen {
		p = append(p, fmt.Sprintf("can.frame_payload_len must be %d, got %d",
			CANFramePayloadLen, s.CAN.FramePayloadLen))
	}

	positive(&p, "motion.turn_radius_mm", s.Motion.TurnRadiusMM)
	positive(&p, "motion.min_turning_radius_mm", s.Motion.MinTurningRadiusMM)
	positive(&p, "motion.turn_speed", s.Motion.TurnSpeed)
	positive(&p, "motion.desired_speed_mmps", s.Motion.DesiredSpeedMMPS)
	if s.Motion.TurnRadiusMM < s.Motion.MinTurningRadiusMM {
		p = append(p, fmt.Sprintf("motion.turn_radius_mm (%d) is tighter than motion.min_turning_radius_mm (%d)",
			s.Motion.TurnRadiusMM, s.Motion.MinTurningRadiusMM))
	}

	if len(p) == 0 {
		return nil
	}
	return errors.Wrap(ErrInvalid, strings.Join(p, "; "))
}
