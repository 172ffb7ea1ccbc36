//go:build tinygo && esp32

package hal

import (
	"image/color"
	"machine"
	"runtime/interrupt"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

// Board pinout (Logic 1.1).
const (
	pinMatrix = machine.GPIO13
	pinStatus = machine.GPIO12
	// pinPower switches the LED supply; high turns it on.
	pinPower = machine.GPIO15
)

type tinyGoHAL struct {
	logger  *uartLogger
	power   *pinLED
	matrix  *ws2812Strip
	status  *ws2812Strip
	flash   Flash
	buttons noButtons
	t       *tinyGoTime
}

// New returns the ESP32 board HAL.
//
// UART: default UART, 115200 8N1.
func New() HAL {
	uart := machine.DefaultUART
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	pinPower.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinPower.Low()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		power:  &pinLED{pin: pinPower},
		matrix: newWS2812Strip(pinMatrix),
		status: newWS2812Strip(pinStatus),
		flash:  stubFlash{},
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Power() LED       { return h.power }
func (h *tinyGoHAL) Matrix() Strip    { return h.matrix }
func (h *tinyGoHAL) Status() Strip    { return h.status }
func (h *tinyGoHAL) Flash() Flash     { return h.flash }
func (h *tinyGoHAL) Buttons() Buttons { return h.buttons }
func (h *tinyGoHAL) Time() Time       { return h.t }

// ws2812Strip sends a frame with interrupts off; the WS2812 timing does not
// survive being preempted.
type ws2812Strip struct {
	dev ws2812.Device
}

func newWS2812Strip(pin machine.Pin) *ws2812Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ws2812Strip{dev: ws2812.New(pin)}
}

func (s *ws2812Strip) WriteColors(buf []color.RGBA) error {
	state := interrupt.Disable()
	err := s.dev.WriteColors(buf)
	interrupt.Restore(state)
	return err
}

// noButtons never delivers an event: the board buttons are not wired yet.
type noButtons struct{}

func (noButtons) Events() <-chan ButtonEvent { return nil }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }
