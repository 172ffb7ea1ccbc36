//go:build !tinygo

package hal

import (
	"fmt"
	"image/color"
	"sync"

	log "github.com/sirupsen/logrus"
)

// hostStrip stands in for a WS2812 chain: it keeps the last frame written so
// the previews can draw it.
type hostStrip struct {
	mu     sync.Mutex
	name   string
	power  *hostLED
	frame  []color.RGBA
	frames uint64
	entry  *log.Entry
}

func newHostStrip(name string, n int, power *hostLED, l *log.Logger) *hostStrip {
	return &hostStrip{
		name:  name,
		power: power,
		frame: make([]color.RGBA, n),
		entry: l.WithField("component", "strip").WithField("strip", name),
	}
}

func (s *hostStrip) WriteColors(buf []color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(buf) > len(s.frame) {
		return fmt.Errorf("strip %s: %d colors for %d leds", s.name, len(buf), len(s.frame))
	}
	// A shorter write leaves the tail of the chain as it was, like the real LEDs.
	copy(s.frame, buf)
	s.frames++
	if s.entry.Logger.IsLevelEnabled(log.DebugLevel) {
		s.entry.WithField("frame", s.frames).Debugf("colors: %v", buf)
	}
	return nil
}

// snapshot copies the visible colors into dst: the last frame while the LED
// supply is on, black otherwise.
func (s *hostStrip) snapshot(dst []color.RGBA) []color.RGBA {
	on := s.power == nil || s.power.isOn()

	s.mu.Lock()
	defer s.mu.Unlock()

	dst = append(dst[:0], s.frame...)
	if !on {
		for i := range dst {
			dst[i] = color.RGBA{}
		}
	}
	return dst
}

func (s *hostStrip) frameCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}
