// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

// OsMode selects how the OS output behaves when the temperature crosses
// the TOS/THYST thresholds.
type OsMode byte

const (
	// ModeComparator drives OS like a thermostat: asserted above TOS,
	// released below THYST. Power-up default.
	ModeComparator OsMode = 0
	// ModeInterrupt asserts OS on a threshold crossing and holds it until
	// any register is read.
	ModeInterrupt OsMode = 1
)

// OsPolarity selects the active level of the OS output.
type OsPolarity byte

const (
	// ActiveLow pulls the open-drain OS output low when asserted.
	// Power-up default.
	ActiveLow OsPolarity = 0
	// ActiveHigh drives OS high when asserted. Requires a pull-down.
	ActiveHigh OsPolarity = 1
)

// FaultQueue is the number of consecutive over-limit conversions required
// before the OS output asserts. Only depths 1, 2, 4 and 6 exist in
// hardware.
type FaultQueue int

const (
	FaultQueue1 FaultQueue = 1
	FaultQueue2 FaultQueue = 2
	FaultQueue4 FaultQueue = 4
	FaultQueue6 FaultQueue = 6
)

// Configuration register bit layout.
const (
	bitShutdown    byte = 1 << 0
	bitCompInt     byte = 1 << 1
	bitOsPolarity  byte = 1 << 2
	faultQueuePos       = 3
	faultQueueMask byte = 0x3 << faultQueuePos
)

// configReg is the unpacked configuration register. Packing in one place
// is what lets a setter change a single field without disturbing the
// rest.
type configReg struct {
	Shutdown bool
	Mode     OsMode
	Polarity OsPolarity
	Queue    FaultQueue
	// Bits 5..7 are reserved and carried through read-modify-write
	// untouched.
	reserved byte
}

func unpackConfig(b byte) configReg {
	c := configReg{
		Shutdown: b&bitShutdown != 0,
		Mode:     ModeComparator,
		Polarity: ActiveLow,
		reserved: b &^ (bitShutdown | bitCompInt | bitOsPolarity | faultQueueMask),
	}
	if b&bitCompInt != 0 {
		c.Mode = ModeInterrupt
	}
	if b&bitOsPolarity != 0 {
		c.Polarity = ActiveHigh
	}
	switch (b & faultQueueMask) >> faultQueuePos {
	case 0:
		c.Queue = FaultQueue1
	case 1:
		c.Queue = FaultQueue2
	case 2:
		c.Queue = FaultQueue4
	case 3:
		c.Queue = FaultQueue6
	}
	return c
}

func (c configReg) pack() byte {
	b := c.reserved
	if c.Shutdown {
		b |= bitShutdown
	}
	if c.Mode == ModeInterrupt {
		b |= bitCompInt
	}
	if c.Polarity == ActiveHigh {
		b |= bitOsPolarity
	}
	b |= c.Queue.bits() << faultQueuePos
	return b
}

func (q FaultQueue) valid() bool {
	switch q {
	case FaultQueue1, FaultQueue2, FaultQueue4, FaultQueue6:
		return true
	}
	return false
}

func (q FaultQueue) bits() byte {
	switch q {
	case FaultQueue2:
		return 1
	case FaultQueue4:
		return 2
	case FaultQueue6:
		return 3
	}
	return 0
}
