// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/lm75"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	// A device strapped with A0 high sits at 0x49.
	d, err := lm75.NewI2C(b, lm75.PinAddr(false, false, true), nil)
	if err != nil {
		log.Fatalf("failed to initialize LM75: %v", err)
	}

	e := physic.Env{}
	if err := d.Sense(&e); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%8s\n", e.Temperature)
}

// Example_thermostat programs the thermal watchdog: OS asserts after two
// consecutive conversions above 80°C and releases below 75°C.
func Example_thermostat() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := lm75.NewI2C(b, lm75.DefaultAddr, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.SetOSTemperature(physic.ZeroCelsius + 80*physic.Kelvin); err != nil {
		log.Fatal(err)
	}
	if err := d.SetHysteresisTemperature(physic.ZeroCelsius + 75*physic.Kelvin); err != nil {
		log.Fatal(err)
	}
	if err := d.SetOSMode(lm75.ModeComparator); err != nil {
		log.Fatal(err)
	}
	if err := d.SetFaultQueue(lm75.FaultQueue2); err != nil {
		log.Fatal(err)
	}
	if err := d.Enable(); err != nil {
		log.Fatal(err)
	}
}
