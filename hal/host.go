//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

type hostHAL struct {
	logger  *hostLogger
	power   *hostLED
	matrix  *hostStrip
	status  *hostStrip
	flash   *FileFlash
	buttons *hostButtons
	t       *hostTime
}

// HostOptions tunes the host HAL.
type HostOptions struct {
	// Verbose enables debug logging of every transmitted frame.
	Verbose bool
	// LogOutput receives log lines; defaults to stderr.
	LogOutput io.Writer
}

// New returns a host HAL implementation.
func New() HAL {
	return NewHost(HostOptions{})
}

// NewHost returns a host HAL implementation configured by opts.
func NewHost(opts HostOptions) HAL {
	return newHostHAL(opts)
}

func newHostHAL(opts HostOptions) *hostHAL {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if opts.LogOutput != nil {
		l.SetOutput(opts.LogOutput)
	} else {
		l.SetOutput(os.Stderr)
	}
	if opts.Verbose {
		l.SetLevel(log.DebugLevel)
	}

	logger := &hostLogger{entry: l.WithField("component", "logic")}
	power := &hostLED{entry: l.WithField("component", "power")}
	return &hostHAL{
		logger:  logger,
		power:   power,
		matrix:  newHostStrip("matrix", MatrixLEDs, power, l),
		status:  newHostStrip("status", StatusLEDs, power, l),
		flash:   newHostFlash(),
		buttons: newHostButtons(),
		t:       newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Power() LED       { return h.power }
func (h *hostHAL) Matrix() Strip    { return h.matrix }
func (h *hostHAL) Status() Strip    { return h.status }
func (h *hostHAL) Flash() Flash     { return h.flash }
func (h *hostHAL) Buttons() Buttons { return h.buttons }
func (h *hostHAL) Time() Time       { return h.t }

type hostLogger struct {
	entry *log.Entry
}

func (l *hostLogger) WriteLineString(s string) {
	l.entry.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.entry.Info(string(b))
}

type hostLED struct {
	mu    sync.Mutex
	on    bool
	entry *log.Entry
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.entry.Debug("led power: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.entry.Debug("led power: LOW")
}

func (l *hostLED) isOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
