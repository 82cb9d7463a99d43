package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Load reads the settings file at path over the compiled-in defaults and validates the
// result.  A missing file is not an error: the defaults are used as they are.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Println("No settings file at", path, "using defaults")
		return s, s.Validate()
	} else if err != nil {
		return Settings{}, errors.Wrap(err, "failed to read settings")
	}
	if s, err = Parse(data); err != nil {
		return Settings{}, errors.Wrapf(err, "settings file %s", path)
	}
	return s, nil
}

// Parse decodes YAML over the defaults, resolves the origin preset and validates.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "failed to parse settings")
	}
	if err := s.resolveOrigin(); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) resolveOrigin() error {
	if s.Origin.Preset == "" {
		return nil
	}
	p, ok := OriginPreset(s.Origin.Preset)
	if !ok {
		return errors.Wrapf(ErrInvalid, "unknown origin preset %q", s.Origin.Preset)
	}
	s.Origin.Lat, s.Origin.Long = p.Lat, p.Long
	return nil
}

func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(&s)
}

// InUsePath returns the path that WriteInUse writes to for a given settings file:
// /cfg/highlevel.yaml becomes /cfg/highlevel-in-use.yaml.
func InUsePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-in-use" + ext
}

// WriteInUse records the settings the vehicle is actually running with next to the
// settings file.
func WriteInUse(path string, s Settings) error {
	data, err := s.Marshal()
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}
	out := InUsePath(path)
	if err := os.WriteFile(out, data, 0666); err != nil {
		return errors.Wrapf(err, "failed to write %s", out)
	}
	return nil
}
