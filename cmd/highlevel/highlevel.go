package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn/physic"

	"github.com/elcano/go-highlevel/pkg/canframe"
	"github.com/elcano/go-highlevel/pkg/debuglog"
	"github.com/elcano/go-highlevel/pkg/geo"
	"github.com/elcano/go-highlevel/pkg/mission"
	"github.com/elcano/go-highlevel/pkg/pilot"
	"github.com/elcano/go-highlevel/pkg/settings"
)

var ErrGoalOutOfRange = errors.New("goal offset does not fit in a frame")

func main() {
	fmt.Println("---- Elcano high level ----")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	defaultSettings := os.Getenv("SETTINGS_FILE")
	if defaultSettings == "" {
		defaultSettings = "/cfg/highlevel.yaml"
	}
	flags := flag.NewFlagSet("highlevel", flag.ContinueOnError)
	flags.SetOutput(out)
	settingsPath := flags.String("settings", defaultSettings, "vehicle settings file")
	waypointsPath := flags.String("waypoints", "/cfg/waypoints.yaml", "waypoint list")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Settings are fixed from here on; everything below gets a copy.
	s, err := settings.Load(*settingsPath)
	if err != nil {
		return errors.Wrap(err, "bad settings")
	}
	if err := settings.WriteInUse(*settingsPath, s); err != nil {
		fmt.Fprintln(out, err)
	}
	fmt.Fprintf(out, "Using settings: %+v\n", s)

	logs := debuglog.New(s.Debug, out)
	logs.General.Debug("Settings loaded")

	framer, err := canframe.NewFramer(s, logs.CAN)
	if err != nil {
		return errors.Wrap(err, "CAN framing")
	}

	table, err := mission.LoadFile(*waypointsPath, s)
	if err != nil {
		return errors.Wrap(err, "waypoints")
	}
	legs, err := table.Mission()
	if err != nil {
		return errors.Wrap(err, "mission")
	}
	fmt.Fprintf(out, "Mission of %d cones from %d waypoints, origin %v\n",
		len(legs), table.Len(), table.Frame().Origin())

	p := pilot.New(s, logs.Nav)
	if err := p.CheckRadius(s.Motion.TurnRadius()); err != nil {
		return errors.Wrap(err, "motion")
	}

	heading := 0.0
	pos := legs[0].Local
	for i, wp := range legs[1:] {
		sp := p.Setpoint(pos, wp.Local, heading)
		fmt.Fprintf(out, "Leg %d -> %s: bearing %.1f, %s, %s to go\n",
			i+1, wp.Name, sp.Bearing, sp.Direction, sp.Remaining)

		payload, err := goalPayload(wp.Local)
		if err != nil {
			return errors.Wrapf(err, "leg %d", i+1)
		}
		frame, err := framer.Pack(uint32(i+1), payload)
		if err != nil {
			return errors.Wrapf(err, "leg %d", i+1)
		}
		fmt.Fprintf(out, "Leg %d goal frame: %s\n", i+1, frame)

		heading = sp.Bearing
		pos = wp.Local
	}
	return nil
}

// goalPayload encodes a goal position as east then north, signed 32-bit mm, little endian.
func goalPayload(l geo.Local) ([]byte, error) {
	payload := make([]byte, 8)
	for i, d := range []physic.Distance{l.East, l.North} {
		mm := d / physic.MilliMetre
		if mm < math.MinInt32 || mm > math.MaxInt32 {
			return nil, errors.Wrapf(ErrGoalOutOfRange, "%s", d)
		}
		binary.LittleEndian.PutUint32(payload[4*i:], uint32(int32(mm)))
	}
	return payload, nil
}
