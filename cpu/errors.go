package cpu

import "errors"

// ErrHalt is returned by Step the instruction that executes a reserved or
// undefined opcode, transitioning the machine to HALT.
var ErrHalt = errors.New("dcpu16: halted on undefined opcode")

// ErrOnFire is returned by Step the instruction whose interrupt raises the
// 257th pending entry in the interrupt queue, transitioning the machine to
// ON_FIRE.
var ErrOnFire = errors.New("dcpu16: interrupt queue overflow")
