// Package debuglog gives each subsystem its own logger whose verbosity follows that
// subsystem's debug toggle.
package debuglog

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/elcano/go-highlevel/pkg/settings"
)

const (
	General = "general"
	C4      = "c4"
	CAN     = "can"
	Nav     = "nav"
)

type Loggers struct {
	General *logrus.Entry
	C4      *logrus.Entry
	CAN     *logrus.Entry
	Nav     *logrus.Entry
}

func New(d settings.Debug, out io.Writer) *Loggers {
	return &Loggers{
		General: newEntry(out, General, d.General),
		C4:      newEntry(out, C4, d.C4),
		CAN:     newEntry(out, CAN, d.CAN),
		Nav:     newEntry(out, Nav, d.Nav),
	}
}

func newEntry(out io.Writer, subsystem string, debug bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l.WithField("subsystem", subsystem)
}

// For returns the named subsystem's logger, or the general one if the name is unknown.
func (l *Loggers) For(subsystem string) *logrus.Entry {
	switch subsystem {
	case C4:
		return l.C4
	case CAN:
		return l.CAN
	case Nav:
		return l.Nav
	}
	return l.General
}
