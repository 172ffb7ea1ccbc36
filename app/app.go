package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"logic/display"
	"logic/hal"
	"logic/internal/buildinfo"
	"logic/internal/charset"
	"logic/nvs"
)

const (
	// DefaultText is scrolled by the text scene.
	DefaultText = "Ahoj světe! Žluťoučký kůň"
	// DefaultIntensity is used until the user changes it.
	DefaultIntensity = 32
	// IntensityStep is the change per Up/Down press.
	IntensityStep = 16
	// DefaultFrameMillis is the scene step period.
	DefaultFrameMillis = 100

	keyIntensity = "intensity"
	keyScene     = "scene"
)

// Config tunes the app. Zero values select the defaults; negative Intensity
// or Scene restore the stored setting.
type Config struct {
	Text string
	// Charset is the encoding of Text.
	Charset     charset.Charset
	Intensity   int
	Scene       int
	FrameMillis int
	// Seed seeds Random; zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		Text:        DefaultText,
		Charset:     charset.UTF8,
		Intensity:   -1,
		Scene:       -1,
		FrameMillis: DefaultFrameMillis,
	}
}

// New boots the app with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run boots the app and steps it forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// NewWithConfig boots the app and returns its step function. The host
// runners call it once per frame. A failed boot yields a step function that
// reports the error.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	l, err := newLogic(h, cfg)
	if err != nil {
		if lg := h.Logger(); lg != nil {
			lg.WriteLineString("logic: boot: " + err.Error())
		}
		return func() error { return err }
	}
	return l.guard(l.step)
}

// RunWithConfig boots the app with cfg and steps it forever.
func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	t := time.NewTicker(5 * time.Millisecond)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			// Nothing to return to on the board; keep the last frame up.
			select {}
		}
	}
}

// Logic owns the display, the status bar and the settings of one board.
type Logic struct {
	h       hal.HAL
	log     hal.Logger
	disp    *display.Display
	status  *statusBar
	store   *nvs.Store
	scenes  []scene
	buttons <-chan hal.ButtonEvent
	ticks   <-chan uint64
	rng     *rand.Rand

	scene     int
	intensity int
	powered   bool
	showErr   bool

	period    uint64
	now       uint64
	lastFrame uint64
	frame     uint64
}

func newLogic(h hal.HAL, cfg Config) (*Logic, error) {
	if cfg.FrameMillis <= 0 {
		cfg.FrameMillis = DefaultFrameMillis
	}
	text := cfg.Text
	if text == "" {
		text = DefaultText
	}
	if cfg.Charset != charset.UTF8 {
		rs, err := charset.Decode(nil, []byte(text), cfg.Charset)
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		text = string(rs)
	}

	store, err := nvs.Open(h.Flash())
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	l := &Logic{
		h:      h,
		log:    h.Logger(),
		store:  store,
		status: newStatusBar(h.Status()),
		period: uint64(cfg.FrameMillis),
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	l.rng = newRand(seed)
	l.disp = display.New(h.Matrix())
	l.scenes = []scene{
		newTextScene(l.disp, text),
		newShapesScene(l.disp),
		newRainbowScene(l.disp),
		newSparkleScene(l),
	}
	if b := h.Buttons(); b != nil {
		l.buttons = b.Events()
	}
	if t := h.Time(); t != nil {
		l.ticks = t.Ticks()
	}

	l.intensity = cfg.Intensity
	if l.intensity < 0 {
		l.intensity = store.LoadInt(keyIntensity, DefaultIntensity)
	}
	l.intensity = clamp(l.intensity, 0, 255)
	l.scene = cfg.Scene
	if l.scene < 0 {
		l.scene = store.LoadInt(keyScene, 0)
	}
	if l.scene >= len(l.scenes) {
		l.scene = 0
	}

	l.logf("logic %s: intensity=%d scene=%s persistent=%v", buildinfo.Long(), l.intensity, l.scenes[l.scene].name(), store.Persistent())

	l.powerOn()
	l.disp.SetIntensity(uint8(l.intensity))
	l.scenes[l.scene].step(0)
	// A strip that cannot take the first frame is a wiring fault.
	if err := l.disp.Display(); err != nil {
		return nil, err
	}
	if err := l.status.show(l.intensity); err != nil {
		return nil, err
	}
	return l, nil
}

// step handles pending input and advances the scene once a frame period has
// passed.
func (l *Logic) step() error {
	l.drainTicks()
	l.drainButtons()

	if !l.powered || l.now-l.lastFrame < l.period {
		return nil
	}
	l.lastFrame = l.now
	l.frame++
	l.scenes[l.scene].step(l.frame)
	l.flush()
	return nil
}

func (l *Logic) drainTicks() {
	for {
		select {
		case seq, ok := <-l.ticks:
			if !ok {
				l.ticks = nil
				return
			}
			l.now = seq
		default:
			return
		}
	}
}

func (l *Logic) drainButtons() {
	for {
		select {
		case ev, ok := <-l.buttons:
			if !ok {
				l.buttons = nil
				return
			}
			if ev.Press {
				l.press(ev.Button)
			}
		default:
			return
		}
	}
}

func (l *Logic) press(b hal.Button) {
	switch b {
	case hal.ButtonUp:
		l.setIntensity(l.intensity + IntensityStep)
	case hal.ButtonDown:
		l.setIntensity(l.intensity - IntensityStep)
	case hal.ButtonLeft:
		l.setScene(l.scene - 1)
	case hal.ButtonRight:
		l.setScene(l.scene + 1)
	case hal.ButtonEscape:
		l.powerOff()
	case hal.ButtonEnter:
		if !l.powered {
			l.powerOn()
			l.scenes[l.scene].step(l.frame)
			l.flush()
		}
	}
}

func (l *Logic) setIntensity(v int) {
	v = clamp(v, 0, 255)
	if v == l.intensity {
		return
	}
	l.intensity = v
	l.disp.SetIntensity(uint8(v))
	l.save(keyIntensity, v)
	l.logf("intensity %d", v)
	l.flush()
}

func (l *Logic) setScene(i int) {
	n := len(l.scenes)
	i = ((i % n) + n) % n
	l.scene = i
	l.frame = 0
	l.scenes[i].reset()
	l.save(keyScene, i)
	l.logf("scene %s", l.scenes[i].name())
	l.scenes[i].step(0)
	l.flush()
}

func (l *Logic) powerOn() {
	l.h.Power().High()
	l.powered = true
}

// powerOff blanks both strips before cutting their supply, so they come
// back dark.
func (l *Logic) powerOff() {
	if !l.powered {
		return
	}
	l.disp.Clear()
	l.flush()
	if err := l.status.clear(); err != nil {
		l.logf("status: %v", err)
	}
	l.h.Power().Low()
	l.powered = false
	l.logf("power off")
}

// flush pushes both strips. Failures are logged once until a frame gets
// through again.
func (l *Logic) flush() {
	if !l.powered {
		return
	}
	err := l.disp.Display()
	if err == nil {
		err = l.status.show(l.intensity)
	}
	switch {
	case err != nil && !l.showErr:
		l.showErr = true
		l.logf("show: %v", err)
	case err == nil:
		l.showErr = false
	}
}

func (l *Logic) save(key string, v int) {
	if err := l.store.SaveInt(key, v); err != nil {
		l.logf("save %s: %v", key, err)
	}
}

func (l *Logic) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Display returns the frame buffer the app draws on.
func (l *Logic) Display() *display.Display { return l.disp }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
