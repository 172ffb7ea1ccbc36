package hal

import (
	"errors"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
//
// The board uses it to switch the LED supply on and off.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

// Strip is a chain of addressable RGB LEDs.
//
// WriteColors matches tinygo.org/x/drivers/ws2812.Device, so the real driver
// is a Strip as is. Colors are sent as given: any intensity scaling has
// already been applied by the caller.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only. Erased bytes
// read 0xFF and writes may only clear bits.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// Button identifies one of the board buttons.
type Button uint8

const (
	ButtonUnknown Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonEnter
	ButtonEscape
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonEnter:
		return "enter"
	case ButtonEscape:
		return "escape"
	}
	return "unknown"
}

// ButtonEvent is a button press or release.
type ButtonEvent struct {
	Button Button
	Press  bool
}

// Buttons provides button events (best-effort on each platform).
type Buttons interface {
	Events() <-chan ButtonEvent
}

// Time provides a base tick stream.
//
// The tick duration is 1ms; higher-level timers live in the app.
type Time interface {
	Ticks() <-chan uint64
}

const (
	// MatrixLEDs is the number of LEDs on the display chain (10x12).
	MatrixLEDs = 120
	// StatusLEDs is the number of LEDs on the status bar chain.
	StatusLEDs = 10
)

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	Power() LED
	Matrix() Strip
	Status() Strip
	Flash() Flash
	Buttons() Buttons
	Time() Time
}
