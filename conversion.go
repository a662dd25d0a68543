// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"periph.io/x/conn/v3/physic"
)

// Resolution is the number of significant bits in the temperature and
// threshold registers. The register word is two's complement, left
// justified in 16 bits, so one count is worth 0.5°C at 9 bits and halves
// with every extra bit.
type Resolution int

const (
	// Resolution9Bit is the native resolution of the LM75, LM75A and
	// DS75LV: 0.5°C per count.
	Resolution9Bit Resolution = 9
	// Resolution10Bit: 0.25°C per count (MAX6625).
	Resolution10Bit Resolution = 10
	// Resolution11Bit: 0.125°C per count (PCT2075, MAX6626).
	Resolution11Bit Resolution = 11
	// Resolution12Bit: 0.0625°C per count (DS7505 at full resolution).
	Resolution12Bit Resolution = 12
)

// lsb is the temperature weight of one count.
func (r Resolution) lsb() physic.Temperature {
	return (500 * physic.MilliKelvin) >> uint(r-Resolution9Bit)
}

// shift is the left justification of a count in the 16 bit register word.
func (r Resolution) shift() uint {
	return 16 - uint(r)
}

// wordToTemperature decodes a big-endian register word. The decoder is
// total: every bit pattern is valid, the don't-care low bits are
// discarded and the arithmetic shift provides the sign extension.
func wordToTemperature(w []byte, res Resolution) physic.Temperature {
	count := int16(uint16(w[0])<<8|uint16(w[1])) >> res.shift()
	return physic.ZeroCelsius + physic.Temperature(count)*res.lsb()
}

// temperatureToWord encodes t into a big-endian register word, rounded to
// the nearest representable step with ties away from zero, left justified
// with the don't-care low bits zeroed. Values outside the device span
// fail with TemperatureRangeError.
func temperatureToWord(t physic.Temperature, res Resolution) ([]byte, error) {
	if t < MinimumTemperature || t > MaximumTemperature {
		return nil, &TemperatureRangeError{Temperature: t}
	}
	delta := t - physic.ZeroCelsius
	lsb := res.lsb()
	half := lsb / 2
	if delta < 0 {
		half = -half
	}
	count := int16((delta + half) / lsb)
	w := uint16(count) << res.shift()
	return []byte{byte(w >> 8), byte(w)}, nil
}
