// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddr is the bus address of a device with all three address pins
// low, which is the power-up default of the reference LM75.
const DefaultAddr uint16 = 0x48

const (
	// Register pointer values. A transaction starts with one pointer byte
	// selecting the register for the data bytes that follow (writes) or
	// for the subsequent read.
	regTemperature   byte = 0x00
	regConfiguration byte = 0x01
	regHysteresis    byte = 0x02
	regOverTemp      byte = 0x03
	// Conversion period register, PCT2075 only.
	regIdlePeriod byte = 0x04

	samplePeriodStep = 100 * time.Millisecond

	// MinimumTemperature is the lowest threshold the device can hold.
	MinimumTemperature physic.Temperature = physic.ZeroCelsius - 55*physic.Kelvin
	// MaximumTemperature is the highest threshold the device can hold.
	MaximumTemperature physic.Temperature = physic.ZeroCelsius + 125*physic.Kelvin
)

// PinAddr returns the 7-bit bus address selected by the A2, A1 and A0
// address pins. All eight pin combinations are valid; three low pins give
// DefaultAddr.
func PinAddr(a2, a1, a0 bool) uint16 {
	addr := DefaultAddr
	if a2 {
		addr |= 1 << 2
	}
	if a1 {
		addr |= 1 << 1
	}
	if a0 {
		addr |= 1
	}
	return addr
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Resolution of the temperature registers. The reference LM75
	// converts at 9 bits; compatible parts go up to 12. Leave zero for
	// the LM75 default.
	Resolution Resolution
}

// DefaultOpts matches the reference LM75 at its native 9-bit resolution.
var DefaultOpts = Opts{Resolution: Resolution9Bit}

// Dev represents an LM75 on an I²C bus. The handle owns the bus address
// for its lifetime; concurrent use is serialized by an internal mutex but
// the bus itself is shared per the usual i2c.Bus rules.
type Dev struct {
	d    *i2c.Dev
	opts Opts
	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewI2C returns a handle for an LM75 at addr on the supplied bus.
//
// addr is either PinAddr(...) for pin-strapped parts or a raw 7-bit
// override for compatible devices whose address is not pin-derived. An
// address outside the 7-bit range fails with InvalidAddrError and a
// resolution outside 9 to 12 bits fails with ResolutionError, both before
// the bus is touched. No bus transaction is issued by the constructor; the
// device keeps its power-up configuration until an operation changes it.
// Opts can be nil.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr > 0x7f {
		return nil, &InvalidAddrError{Addr: addr}
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Resolution == 0 {
		o.Resolution = Resolution9Bit
	}
	if o.Resolution < Resolution9Bit || o.Resolution > Resolution12Bit {
		return nil, &ResolutionError{Resolution: o.Resolution}
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, opts: o}, nil
}

// Enable takes the device out of shutdown. Conversions resume.
func (d *Dev) Enable() error {
	return d.updateConfig(func(c *configReg) { c.Shutdown = false })
}

// Disable puts the device in low power shutdown. The temperature register
// keeps the last converted value while shut down.
func (d *Dev) Disable() error {
	return d.updateConfig(func(c *configReg) { c.Shutdown = true })
}

// SetOSMode selects comparator or interrupt behavior for the OS output.
func (d *Dev) SetOSMode(m OsMode) error {
	return d.updateConfig(func(c *configReg) { c.Mode = m })
}

// SetOSPolarity selects the active level of the OS output.
func (d *Dev) SetOSPolarity(p OsPolarity) error {
	return d.updateConfig(func(c *configReg) { c.Polarity = p })
}

// SetFaultQueue sets how many consecutive over-limit conversions are
// required before the OS output asserts. q must be FaultQueue1,
// FaultQueue2, FaultQueue4 or FaultQueue6; any other depth fails with
// FaultQueueError before the bus is touched.
func (d *Dev) SetFaultQueue(q FaultQueue) error {
	if !q.valid() {
		return &FaultQueueError{Queue: q}
	}
	return d.updateConfig(func(c *configReg) { c.Queue = q })
}

// updateConfig reads the configuration register, applies f and writes the
// byte back. Read and write happen in the same call so fields changed out
// of band are never clobbered.
func (d *Dev) updateConfig(f func(*configReg)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{regConfiguration}, r); err != nil {
		return err
	}
	c := unpackConfig(r[0])
	f(&c)
	return d.d.Tx([]byte{regConfiguration, c.pack()}, nil)
}

// SetOSTemperature sets the overtemperature threshold (TOS) above which
// the OS output asserts. The power-up default is +80°C.
//
// The device expects TOS above the hysteresis threshold for comparator
// mode to be meaningful; the driver does not enforce that policy.
func (d *Dev) SetOSTemperature(t physic.Temperature) error {
	return d.writeThreshold(regOverTemp, t)
}

// SetHysteresisTemperature sets the hysteresis threshold (THYST) below
// which an alarm condition clears in comparator mode. The power-up
// default is +75°C.
func (d *Dev) SetHysteresisTemperature(t physic.Temperature) error {
	return d.writeThreshold(regHysteresis, t)
}

// OSTemperature reads back the overtemperature threshold register.
func (d *Dev) OSTemperature() (physic.Temperature, error) {
	return d.readThreshold(regOverTemp)
}

// HysteresisTemperature reads back the hysteresis threshold register.
func (d *Dev) HysteresisTemperature() (physic.Temperature, error) {
	return d.readThreshold(regHysteresis)
}

func (d *Dev) writeThreshold(reg byte, t physic.Temperature) error {
	w, err := temperatureToWord(t, d.opts.Resolution)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.d.Tx([]byte{reg, w[0], w[1]}, nil)
}

func (d *Dev) readThreshold(reg byte) (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := make([]byte, 2)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	return wordToTemperature(r, d.opts.Resolution), nil
}

// SetSamplePeriod programs the conversion cycle of a PCT2075. Valid
// periods are multiples of 100ms between 100ms and 3.1s; anything else
// fails with SamplePeriodRangeError before the bus is touched. Other
// parts in the family have a fixed conversion cycle and no such register.
func (d *Dev) SetSamplePeriod(p time.Duration) error {
	if p < samplePeriodStep || p > 31*samplePeriodStep || p%samplePeriodStep != 0 {
		return &SamplePeriodRangeError{Period: p}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.d.Tx([]byte{regIdlePeriod, byte(p / samplePeriodStep)}, nil)
}

// SamplePeriod reads the PCT2075 conversion cycle register.
func (d *Dev) SamplePeriod() (time.Duration, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{regIdlePeriod}, r); err != nil {
		return 0, err
	}
	return time.Duration(r[0]&0x1f) * samplePeriodStep, nil
}

// Sense reads the temperature register once. Implements physic.SenseEnv.
//
// A device in shutdown returns the last converted value; that is hardware
// behavior the driver does not mask.
func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := make([]byte, 2)
	if err := d.d.Tx([]byte{regTemperature}, r); err != nil {
		return err
	}
	e.Temperature = wordToTemperature(r, d.opts.Resolution)
	return nil
}

// SenseContinuous reads the temperature every interval and delivers the
// values on the returned channel until Halt is called. Implements
// physic.SenseEnv. Readings are dropped when the channel is not drained.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("already sensing continuously")
	}
	d.stop = make(chan struct{})
	d.wg.Add(1)
	sensing := make(chan physic.Env, 16)
	go func(stop chan struct{}) {
		defer d.wg.Done()
		defer close(sensing)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				var e physic.Env
				if err := d.Sense(&e); err == nil {
					select {
					case sensing <- e:
					default:
					}
				}
			}
		}
	}(d.stop)
	return sensing, nil
}

// Precision returns the temperature weight of one count at the configured
// resolution. Implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = d.opts.Resolution.lsb()
	e.Pressure = 0
	e.Humidity = 0
}

// Halt stops any continuous read and shuts the device down. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	d.mu.Unlock()
	d.wg.Wait()
	return d.Disable()
}

func (d *Dev) String() string {
	return fmt.Sprintf("lm75: %s", d.d.String())
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
