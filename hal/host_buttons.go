//go:build !tinygo

package hal

type hostButtons struct {
	ch chan ButtonEvent
}

func newHostButtons() *hostButtons {
	return &hostButtons{ch: make(chan ButtonEvent, 64)}
}

func (b *hostButtons) Events() <-chan ButtonEvent { return b.ch }

// emit queues an event, dropping it when nobody keeps up.
func (b *hostButtons) emit(btn Button, press bool) {
	select {
	case b.ch <- ButtonEvent{Button: btn, Press: press}:
	default:
	}
}
