//go:build tinygo

package main

import (
	"logic/app"
	"logic/hal"
)

func main() {
	app.Run(hal.New())
}
