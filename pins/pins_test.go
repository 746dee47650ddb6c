// SPDX-License-Identifier: EPL-2.0

package pins

import "testing"

type reg struct {
	v      uint8
	writes int
}

func (r *reg) Get() uint8  { return r.v }
func (r *reg) Set(v uint8) { r.v = v; r.writes++ }

func TestNewSink_Masks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		offset     uint8
		wantOffset uint8
		wantLower  uint8
		wantUpper  uint8
	}{
		{0, 2, 0b0000_0011, 0b1111_1100},
		{2, 2, 0b0000_0011, 0b1111_1100},
		{3, 3, 0b0000_0111, 0b1111_1000},
		{5, 5, 0b0001_1111, 0b1110_0000},
		{6, 6, 0b0011_1111, 0b1100_0000},
		{9, 6, 0b0011_1111, 0b1100_0000},
	}

	for _, tt := range tests {
		s := NewSink(&reg{}, &reg{}, tt.offset)
		lower, upper := s.Masks()

		if s.Offset() != tt.wantOffset {
			t.Errorf("offset %d: Offset() = %d, want %d", tt.offset, s.Offset(), tt.wantOffset)
		}
		if lower != tt.wantLower || upper != tt.wantUpper {
			t.Errorf("offset %d: Masks() = (%08b, %08b), want (%08b, %08b)",
				tt.offset, lower, upper, tt.wantLower, tt.wantUpper)
		}
	}
}

func TestSink_Put(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		offset   uint8
		lowIn    uint8
		highIn   uint8
		value    uint8
		wantLow  uint8
		wantHigh uint8
	}{
		{"offset 2 clear ports", 2, 0x00, 0x00, 0xFF, 0b1111_1100, 0b0000_0011},
		{"offset 2 keeps serial bits", 2, 0b0000_0011, 0b1100_0000, 0x00, 0b0000_0011, 0b1100_0000},
		{"offset 3 pattern", 3, 0x00, 0x00, 0b1010_0101, 0b0010_1000, 0b0000_0101},
		{"offset 6 pattern", 6, 0b0010_1010, 0b1000_0000, 0b1110_0111, 0b1110_1010, 0b1011_1001},
		{"overwrites previous window", 4, 0xFF, 0xFF, 0x00, 0b0000_1111, 0b1111_0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			low, high := &reg{v: tt.lowIn}, &reg{v: tt.highIn}
			s := NewSink(low, high, tt.offset)
			s.Put(tt.value)

			if low.v != tt.wantLow {
				t.Errorf("low = %08b, want %08b", low.v, tt.wantLow)
			}
			if high.v != tt.wantHigh {
				t.Errorf("high = %08b, want %08b", high.v, tt.wantHigh)
			}
			if got := s.Value(); got != tt.value {
				t.Errorf("Value() = %08b, want %08b", got, tt.value)
			}
		})
	}
}

func TestSink_RoundTripAllValues(t *testing.T) {
	t.Parallel()

	for offset := uint8(MinOffset); offset <= MaxOffset; offset++ {
		low, high := &reg{v: 0x5A}, &reg{v: 0xA5}
		s := NewSink(low, high, offset)
		lower, upper := s.Masks()

		for v := range 256 {
			s.Put(uint8(v))

			if got := s.Value(); got != uint8(v) {
				t.Fatalf("offset %d: Value() = %d, want %d", offset, got, v)
			}
			if low.v&lower != 0x5A&lower {
				t.Fatalf("offset %d: unrelated low bits changed: %08b", offset, low.v)
			}
			if high.v&upper != 0xA5&upper {
				t.Fatalf("offset %d: unrelated high bits changed: %08b", offset, high.v)
			}
		}
	}
}

func TestSink_Outputs(t *testing.T) {
	t.Parallel()

	lowDir, highDir := &reg{v: 0b0000_0010}, &reg{v: 0b0010_0000}
	s := NewSink(&reg{}, &reg{}, 3)
	s.Outputs(lowDir, highDir)

	if lowDir.v != 0b1111_1010 {
		t.Errorf("lowDir = %08b, want %08b", lowDir.v, 0b1111_1010)
	}
	if highDir.v != 0b0010_0111 {
		t.Errorf("highDir = %08b, want %08b", highDir.v, 0b0010_0111)
	}
}

func TestSink_PutSingleWritePerRegister(t *testing.T) {
	t.Parallel()

	low, high := &reg{}, &reg{}
	s := NewSink(low, high, 2)
	s.Put(0x42)

	if low.writes != 1 || high.writes != 1 {
		t.Errorf("writes = (%d, %d), want (1, 1)", low.writes, high.writes)
	}
}
