// SPDX-License-Identifier: EPL-2.0

package engine

// MaxChannels is the largest channel count with a mix scale.
const MaxChannels = 5

// MixScale approximates division by a channel count as a multiply and a
// right shift.
type MixScale struct {
	Multiplier uint16
	Shift      uint8
}

var mixScales = [MaxChannels + 1]MixScale{
	{0, 0},
	{1, 0},
	{1, 1},
	{85, 8},
	{1, 2},
	{51, 8},
}

// ScaleFor returns the mix scale for count channels. ok is false when count
// is outside [0, MaxChannels].
func ScaleFor(count int) (scale MixScale, ok bool) {
	if count < 0 || count > MaxChannels {
		return MixScale{}, false
	}
	return mixScales[count], true
}

// Apply scales the sum of count samples down to one 8-bit sample.
func (m MixScale) Apply(sum uint16) uint8 {
	return uint8(sum * m.Multiplier >> m.Shift)
}
