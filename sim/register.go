// SPDX-License-Identifier: EPL-2.0

package sim

import "sync/atomic"

// Register is an 8-bit port register in memory. It is safe for concurrent
// use.
type Register struct {
	v      atomic.Uint32
	writes atomic.Uint64
}

// NewRegister returns a Register holding v.
func NewRegister(v uint8) *Register {
	r := &Register{}
	r.v.Store(uint32(v))
	return r
}

func (r *Register) Get() uint8 { return uint8(r.v.Load()) }

func (r *Register) Set(v uint8) {
	r.v.Store(uint32(v))
	r.writes.Add(1)
}

// Writes returns how many times Set was called.
func (r *Register) Writes() uint64 { return r.writes.Load() }

// Board holds the data and direction registers of two 8-bit ports.
type Board struct {
	Low, High       *Register
	LowDir, HighDir *Register
}

// NewBoard returns a Board with every register cleared.
func NewBoard() *Board {
	return &Board{
		Low:     NewRegister(0),
		High:    NewRegister(0),
		LowDir:  NewRegister(0),
		HighDir: NewRegister(0),
	}
}
