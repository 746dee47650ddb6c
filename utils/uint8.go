// SPDX-License-Identifier: EPL-2.0

package utils

// Midpoint is the unsigned 8-bit value of silence.
const Midpoint = 128

// Float32ToUint8 maps x to an unsigned sample with 128 as zero, rounding to
// nearest. It is the inverse of Uint8ToFloat32: -1 maps to 0 and anything at
// or above 127/128 maps to 255.
func Float32ToUint8(x float32) uint8 {
	v := x*Midpoint + Midpoint + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}

	return uint8(v)
}

// Uint8ToFloat32 maps an unsigned sample back to [-1,1) with 128 as zero.
func Uint8ToFloat32(v uint8) float32 {
	return float32(int(v)-Midpoint) / Midpoint
}
