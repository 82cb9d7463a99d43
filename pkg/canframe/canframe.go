// Package canframe packs payloads into the fixed-width frames exchanged with the low-level
// boards.  It does not talk to the bus.
package canframe

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/elcano/go-highlevel/pkg/settings"
)

const (
	PayloadLen = settings.CANFramePayloadLen
	// MaxID is the largest extended (29-bit) identifier.
	MaxID = 1<<29 - 1
)

var (
	ErrPayloadTooLong = errors.New("payload longer than frame data field")
	ErrBadLength      = errors.New("frame length out of range")
	ErrBadID          = errors.New("frame ID out of range")
)

type Frame struct {
	ID   uint32
	Len  int
	Data [PayloadLen]byte
}

func (f Frame) String() string {
	n := f.Len
	if n < 0 || n > PayloadLen {
		n = 0
	}
	return fmt.Sprintf("id=0x%03x len=%d data=% x", f.ID, f.Len, f.Data[:n])
}

type Framer struct {
	maxLen int
	log    *logrus.Entry
}

// NewFramer checks the configured payload length against the frame layout.
func NewFramer(s settings.Settings, log *logrus.Entry) (*Framer, error) {
	if s.CAN.FramePayloadLen != PayloadLen {
		return nil, errors.Wrapf(settings.ErrInvalid,
			"frame payload length %d does not match frame layout (%d)", s.CAN.FramePayloadLen, PayloadLen)
	}
	return &Framer{maxLen: s.CAN.FramePayloadLen, log: log}, nil
}

func (f *Framer) Pack(id uint32, payload []byte) (Frame, error) {
	if id > MaxID {
		return Frame{}, errors.Wrapf(ErrBadID, "0x%x", id)
	}
	if len(payload) > f.maxLen {
		return Frame{}, errors.Wrapf(ErrPayloadTooLong, "%d > %d bytes", len(payload), f.maxLen)
	}
	fr := Frame{ID: id, Len: len(payload)}
	copy(fr.Data[:], payload)
	f.log.Debugf("Packed %s", fr)
	return fr, nil
}

func (f *Framer) Unpack(fr Frame) ([]byte, error) {
	if fr.Len < 0 || fr.Len > f.maxLen {
		return nil, errors.Wrapf(ErrBadLength, "%d", fr.Len)
	}
	f.log.Debugf("Unpacked %s", fr)
	out := make([]byte, fr.Len)
	copy(out, fr.Data[:fr.Len])
	return out, nil
}
