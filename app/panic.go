package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"logic/display"
)

var panicColor = display.RGB{R: 255}

// guard turns a panic inside step into an error. The panic and its stack go
// to the log line by line and the matrix shows a red "!".
func (l *Logic) guard(step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			l.logf("logic panic: %v", v)
			for _, line := range strings.Split(string(debug.Stack()), "\n") {
				if line == "" {
					continue
				}
				l.logf("%s", line)
			}

			l.disp.Clear()
			l.disp.DrawCharacter('!', panicColor)
			if !l.powered {
				l.powerOn()
			}
			_ = l.disp.Display()
			err = fmt.Errorf("logic panic: %v", v)
		}()
		return step()
	}
}
