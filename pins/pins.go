// SPDX-License-Identifier: EPL-2.0

// Package pins presents an 8-bit value on eight logically contiguous GPIO
// lines that straddle two 8-bit port registers.
//
// With an offset of 3 the layout is:
//
//	value bit:   0 1 2 3 4   5 6 7
//	register:    low[3..7]   high[0..2]
//
// Bits of either register outside that window are preserved with a
// read-modify-write, so other peripherals on the same ports keep working.
package pins

// Register is an 8-bit memory-mapped port register. TinyGo's
// volatile.Register8 satisfies it.
type Register interface {
	Get() uint8
	Set(value uint8)
}

const (
	MinOffset = 2
	MaxOffset = 6
)

// Sink writes bytes to a pair of port registers at a fixed bit offset.
type Sink struct {
	low, high Register
	offset    uint8
	lowerMask uint8 // bits of low outside the window
	upperMask uint8 // bits of high outside the window
}

// NewSink returns a Sink placing value bit 0 at bit offset of low. The
// offset is clamped to [MinOffset, MaxOffset].
func NewSink(low, high Register, offset uint8) *Sink {
	offset = ClampOffset(offset)
	lowerMask := uint8(1)<<offset - 1

	return &Sink{
		low:       low,
		high:      high,
		offset:    offset,
		lowerMask: lowerMask,
		upperMask: ^lowerMask,
	}
}

// ClampOffset forces offset into [MinOffset, MaxOffset].
func ClampOffset(offset uint8) uint8 {
	if offset < MinOffset {
		return MinOffset
	}
	if offset > MaxOffset {
		return MaxOffset
	}
	return offset
}

// Put presents v on the output pins.
func (s *Sink) Put(v uint8) {
	s.low.Set(s.low.Get()&s.lowerMask | v<<s.offset)
	s.high.Set(s.high.Get()&s.upperMask | v>>(8-s.offset))
}

// Value reassembles the byte currently presented on the output pins.
func (s *Sink) Value() uint8 {
	return s.low.Get()>>s.offset | s.high.Get()<<(8-s.offset)
}

// Outputs marks the eight window bits as outputs in the data direction
// registers of the two ports, leaving other bits as they are.
func (s *Sink) Outputs(lowDir, highDir Register) {
	lowDir.Set(lowDir.Get() | s.upperMask)
	highDir.Set(highDir.Get() | s.lowerMask)
}

func (s *Sink) Offset() uint8 { return s.offset }

// Masks returns the bits preserved in the low and high registers.
func (s *Sink) Masks() (lower, upper uint8) {
	return s.lowerMask, s.upperMask
}
