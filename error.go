// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// InvalidAddrError is returned when a raw address override does not fit
// the 7 bit bus address range.
type InvalidAddrError struct {
	Addr uint16
}

func (e *InvalidAddrError) Error() string {
	return fmt.Sprintf("lm75: %#x is not a valid 7 bit address", e.Addr)
}

// ResolutionError is returned when a resolution is not one of the 9 to
// 12 bit widths the device family converts at.
type ResolutionError struct {
	Resolution Resolution
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("lm75: resolution of %d bits not supported, must be 9 to 12", int(e.Resolution))
}

// FaultQueueError is returned when a fault queue depth is not one of 1,
// 2, 4 or 6.
type FaultQueueError struct {
	Queue FaultQueue
}

func (e *FaultQueueError) Error() string {
	return fmt.Sprintf("lm75: fault queue depth %d not supported, must be 1, 2, 4 or 6", int(e.Queue))
}

// TemperatureRangeError is returned when a threshold cannot be
// represented by the device.
type TemperatureRangeError struct {
	Temperature physic.Temperature
}

func (e *TemperatureRangeError) Error() string {
	return fmt.Sprintf("lm75: temperature %s outside the device range %s to %s", e.Temperature, MinimumTemperature, MaximumTemperature)
}

// SamplePeriodRangeError is returned when a PCT2075 conversion period is
// not a multiple of 100ms between 100ms and 3.1s.
type SamplePeriodRangeError struct {
	Period time.Duration
}

func (e *SamplePeriodRangeError) Error() string {
	return fmt.Sprintf("lm75: sample period %s not supported, must be a multiple of 100ms between 100ms and 3.1s", e.Period)
}
