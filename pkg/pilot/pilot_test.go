package pilot

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn/physic"

	"github.com/elcano/go-highlevel/pkg/debuglog"
	"github.com/elcano/go-highlevel/pkg/geo"
	"github.com/elcano/go-highlevel/pkg/settings"
)

func TestHeadingFromFloat(t *testing.T) {
	expectHeading(t, 0, 0)
	expectHeading(t, 179, 179)
	expectHeading(t, -179, -179)
	expectHeading(t, 180, 180)
	expectHeading(t, -180, 180)
	expectHeading(t, 360, 0)
	expectHeading(t, 361, 1)
	expectHeading(t, 359, -1)
	expectHeading(t, 720+180, 180)
	expectHeading(t, -270, 90)
}

func expectHeading(t *testing.T, in, expected float64) {
	h := HeadingFromFloat(in)
	if math.Abs(h.Float()-expected) > 1e-9 {
		t.Errorf("HeadingFromFloat(%f) = %f, expected %f", in, h.Float(), expected)
	}
}

func TestHeadingArithmetic(t *testing.T) {
	a := HeadingFromFloat(170)
	b := HeadingFromFloat(20)
	if a.Add(b).Float() != -170 {
		t.Errorf("170 + 20 = %f, expected -170", a.Add(b).Float())
	}
	if b.Sub(a).Float() != -150 {
		t.Errorf("20 - 170 = %f, expected -150", b.Sub(a).Float())
	}
}

func TestTurnTo(t *testing.T) {
	expectTurn(t, 0, 90, 90, Right)
	expectTurn(t, 90, 0, -90, Left)
	expectTurn(t, 350, 10, 20, Right)
	expectTurn(t, 10, 350, -20, Left)
	expectTurn(t, 355, 0, 5, Straight)
	expectTurn(t, 0, 180, 180, Right)
	expectTurn(t, 270, 265, -5, Straight)
}

func expectTurn(t *testing.T, heading, bearing, expected float64, dir Direction) {
	h := TurnTo(heading, bearing)
	if math.Abs(h.Float()-expected) > 1e-9 {
		t.Errorf("TurnTo(%f, %f) = %f, expected %f", heading, bearing, h.Float(), expected)
	}
	if d := h.Direction(TurnThreshold); d != dir {
		t.Errorf("TurnTo(%f, %f) direction %s, expected %s", heading, bearing, d, dir)
	}
}

func TestCompass(t *testing.T) {
	if c := HeadingFromFloat(-90).Compass(); c != 270 {
		t.Errorf("-90 as compass = %f, expected 270", c)
	}
	if c := HeadingFromFloat(180).Compass(); c != 180 {
		t.Errorf("180 as compass = %f, expected 180", c)
	}
	if c := HeadingFromFloat(0).Compass(); c != 0 {
		t.Errorf("0 as compass = %f, expected 0", c)
	}
}

func newPilot(out *bytes.Buffer) *Pilot {
	s := settings.Default()
	return New(s, debuglog.New(s.Debug, out).Nav)
}

func TestSetpointStraight(t *testing.T) {
	var log bytes.Buffer
	p := newPilot(&log)
	sp := p.Setpoint(geo.Local{}, geo.Local{North: 10 * physic.Metre}, 5)
	if sp.Direction != Straight {
		t.Fatalf("Expected straight, got %v", sp.Direction)
	}
	if sp.Speed != settings.Default().Motion.DesiredSpeed() || sp.TurnSpeed != 0 {
		t.Errorf("Unexpected speeds %+v", sp)
	}
	if sp.Remaining != 10*physic.Metre {
		t.Errorf("Expected 10m remaining, got %v", sp.Remaining)
	}
	if !strings.Contains(log.String(), "Told to travel straight") {
		t.Errorf("Expected nav trace, got: %s", log.String())
	}
}

func TestSetpointTurns(t *testing.T) {
	p := newPilot(&bytes.Buffer{})
	sp := p.Setpoint(geo.Local{}, geo.Local{East: 10 * physic.Metre}, 0)
	if sp.Direction != Right || sp.TurnSpeed != 1050 || sp.TurnRadius != physic.Metre || sp.Speed != 0 {
		t.Errorf("Expected right turn at turn speed, got %+v", sp)
	}
	sp = p.Setpoint(geo.Local{}, geo.Local{East: -10 * physic.Metre}, 0)
	if sp.Direction != Left {
		t.Errorf("Expected left turn, got %+v", sp)
	}
	// Heading 350, target due north: 10 degrees right, within threshold.
	sp = p.Setpoint(geo.Local{}, geo.Local{North: physic.Metre}, 350)
	if sp.Direction != Straight {
		t.Errorf("Expected straight, got %+v", sp)
	}
}

func TestCheckRadius(t *testing.T) {
	p := newPilot(&bytes.Buffer{})
	if err := p.CheckRadius(physic.Metre); err != nil {
		t.Errorf("Minimum radius should be allowed: %v", err)
	}
	if err := p.CheckRadius(999 * physic.MilliMetre); errors.Cause(err) != ErrTurnTooTight {
		t.Errorf("Expected ErrTurnTooTight, got %v", err)
	}
}
