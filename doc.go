// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// Package lm75 interfaces an LM75 I²C temperature sensor and thermal
// watchdog. The device converts continuously and asserts its open-drain OS
// output when the temperature exceeds a programmable overtemperature
// threshold, with a programmable hysteresis, polarity and fault queue.
//
// The driver is also compatible with the LM75A/B/C, DS75LV, DS7505,
// MAX7500, MAX6625/6626 and PCT2075. Parts converting at more than the
// LM75's native 9 bits are selected with Opts.Resolution.
//
// Range: -55°C - 125°C
//
// Resolution: 0.5°C at 9 bits, down to 0.0625°C at 12 bits
//
// For detailed information, refer to the [datasheet]. The conversion
// period register is specific to the [PCT2075 datasheet].
//
// [datasheet]: https://www.ti.com/lit/ds/symlink/lm75b.pdf
// [PCT2075 datasheet]: https://www.nxp.com/docs/en/data-sheet/PCT2075.pdf
package lm75
