package debuglog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elcano/go-highlevel/pkg/settings"
)

func TestTogglesAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	l := New(settings.Debug{General: false, C4: false, CAN: true, Nav: false}, &buf)

	l.General.Debug("general trace")
	l.CAN.Debug("can trace")
	l.Nav.Debug("nav trace")
	l.Nav.Info("nav info")

	out := buf.String()
	if strings.Contains(out, "general trace") || strings.Contains(out, "nav trace") {
		t.Errorf("Debug output leaked from a disabled subsystem: %s", out)
	}
	if !strings.Contains(out, "can trace") || !strings.Contains(out, "subsystem=can") {
		t.Errorf("Expected CAN debug output, got: %s", out)
	}
	if !strings.Contains(out, "nav info") {
		t.Errorf("Info output should always be logged: %s", out)
	}
}

func TestDefaultToggles(t *testing.T) {
	var buf bytes.Buffer
	l := New(settings.Default().Debug, &buf)
	l.C4.Debug("c4 trace")
	l.General.Debug("general trace")
	out := buf.String()
	if strings.Contains(out, "c4 trace") {
		t.Errorf("C4 debugging is off by default: %s", out)
	}
	if !strings.Contains(out, "general trace") {
		t.Errorf("General debugging is on by default: %s", out)
	}
}

func TestFor(t *testing.T) {
	l := New(settings.Debug{}, &bytes.Buffer{})
	if l.For(CAN) != l.CAN || l.For(Nav) != l.Nav || l.For(C4) != l.C4 {
		t.Error("For returned the wrong logger")
	}
	if l.For("steering") != l.General {
		t.Error("Unknown subsystems should get the general logger")
	}
}
