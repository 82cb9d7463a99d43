// Package pilot turns the next mission leg into a speed and turn setpoint using the
// vehicle's motion settings.
package pilot

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"periph.io/x/periph/conn/physic"

	"github.com/elcano/go-highlevel/pkg/geo"
	"github.com/elcano/go-highlevel/pkg/settings"
)

// TurnThreshold is the heading error, in degrees, above which the vehicle turns rather than
// driving straight.
const TurnThreshold = 10.0

var ErrTurnTooTight = errors.New("turn radius below minimum turning radius")

type Direction string

const (
	Straight Direction = "straight"
	Left     Direction = "left"
	Right    Direction = "right"
)

type Setpoint struct {
	Bearing      float64
	HeadingError Heading
	Direction    Direction
	Remaining    physic.Distance

	// Set when turning.  TurnSpeed is in drive board units.
	TurnRadius physic.Distance
	TurnSpeed  int

	// Set when driving straight.
	Speed physic.Speed
}

type Pilot struct {
	motion settings.Motion
	log    *logrus.Entry
}

func New(s settings.Settings, log *logrus.Entry) *Pilot {
	return &Pilot{motion: s.Motion, log: log}
}

// Setpoint works out what to command to get from one position to the next given the
// vehicle's current compass heading.
func (p *Pilot) Setpoint(from, to geo.Local, heading float64) Setpoint {
	bearing := geo.Bearing(from, to)
	hErr := TurnTo(heading, bearing)
	sp := Setpoint{
		Bearing:      bearing,
		HeadingError: hErr,
		Direction:    hErr.Direction(TurnThreshold),
		Remaining:    geo.Distance(from, to),
	}
	if sp.Direction == Straight {
		sp.Speed = p.motion.DesiredSpeed()
	} else {
		sp.TurnRadius = p.motion.TurnRadius()
		sp.TurnSpeed = p.motion.TurnSpeed
	}
	p.log.WithFields(logrus.Fields{
		"bearing":   bearing,
		"error":     hErr.Float(),
		"remaining": sp.Remaining.String(),
	}).Debugf("Told to travel %s", sp.Direction)
	return sp
}

// CheckRadius rejects a planned turn tighter than the vehicle can drive.
func (p *Pilot) CheckRadius(r physic.Distance) error {
	if limit := p.motion.MinTurningRadius(); r < limit {
		return errors.Wrapf(ErrTurnTooTight, "%s < %s", r, limit)
	}
	return nil
}
