package mission

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/elcano/go-highlevel/pkg/geo"
	"github.com/elcano/go-highlevel/pkg/settings"
)

var (
	ErrTableFull    = errors.New("waypoint table full")
	ErrBadPoint     = errors.New("waypoint out of range")
	ErrShortMission = errors.New("fewer waypoints than mission cones")
)

type Waypoint struct {
	Name  string
	Point geo.Point
	// Local is the waypoint's offset from the map origin.
	Local geo.Local
}

// Table is the vehicle's waypoint table.  Its capacity is fixed when it is created.
type Table struct {
	frame    geo.Frame
	capacity int
	cones    int

	lock      sync.Mutex
	waypoints []Waypoint
}

// NewTable creates an empty table sized by the settings, which must be valid.
func NewTable(s settings.Settings) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot size waypoint table")
	}
	return &Table{
		frame:     geo.NewFrame(s.Origin.Point()),
		capacity:  s.Mission.MaxWaypoints,
		cones:     s.Mission.Cones,
		waypoints: make([]Waypoint, 0, s.Mission.MaxWaypoints),
	}, nil
}

func (t *Table) Frame() geo.Frame {
	return t.frame
}

func (t *Table) Add(name string, p geo.Point) error {
	if !p.Valid() {
		return errors.Wrapf(ErrBadPoint, "%s %v", name, p)
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	if len(t.waypoints) >= t.capacity {
		return errors.Wrapf(ErrTableFull, "cannot add %s, capacity %d", name, t.capacity)
	}
	t.waypoints = append(t.waypoints, Waypoint{
		Name:  name,
		Point: p,
		Local: t.frame.ToLocal(p),
	})
	return nil
}

func (t *Table) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.waypoints)
}

func (t *Table) All() []Waypoint {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([]Waypoint(nil), t.waypoints...)
}

// Mission returns the waypoints the vehicle should visit: the first Cones entries.
func (t *Table) Mission() ([]Waypoint, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if len(t.waypoints) < t.cones {
		return nil, errors.Wrapf(ErrShortMission, "have %d, need %d", len(t.waypoints), t.cones)
	}
	return append([]Waypoint(nil), t.waypoints[:t.cones]...), nil
}

type fileEntry struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Long float64 `yaml:"long"`
}

// LoadFile reads a YAML list of waypoints into a new table.
func LoadFile(path string, s settings.Settings) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read waypoints")
	}
	return Parse(data, s)
}

func Parse(data []byte, s settings.Settings) (*Table, error) {
	var entries []fileEntry
	if err := yaml.UnmarshalStrict(data, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse waypoints")
	}
	t, err := NewTable(s)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("wp%d", i)
		}
		if err := t.Add(name, geo.Point{Lat: e.Lat, Long: e.Long}); err != nil {
			return nil, err
		}
	}
	return t, nil
}
