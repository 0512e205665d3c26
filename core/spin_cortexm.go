//go:build tinygo && cortexm

package core

import "device/arm"

// spin burns one instruction slot per poll of the counter
func spin() {
	arm.Asm("nop")
}
