// Package trace implements the conformance checksums used to compare
// trajectories across independent reimplementations of the kernel. The
// strict contract is per-tick trajectory equality; these running FNV-1a
// hashes are the compact way to verify it.
package trace

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Accumulator folds signed integers into a running 64-bit FNV-1a hash,
// little-endian, eight bytes per value.
type Accumulator struct {
	h hash.Hash64
}

// NewAccumulator returns an empty accumulator at the FNV-1a offset basis.
func NewAccumulator() *Accumulator {
	return &Accumulator{h: fnv.New64a()}
}

// Fold mixes the given values into the hash, in order.
func (a *Accumulator) Fold(values ...int64) {
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		a.h.Write(buf[:])
	}
}

// Sum64 returns the current hash value.
func (a *Accumulator) Sum64() uint64 {
	return a.h.Sum64()
}

// Round converts a coordinate to the nearest whole unit, half away from
// zero, as used by the per-tick rounded-state trace.
func Round(v float32) int64 {
	return int64(math.Round(float64(v)))
}

// Quantize converts a coordinate to whole milli-units, the resolution used
// by the cross-target final-state parity hash. Exact half-milli ties round
// to even, matching the reference parity harness.
func Quantize(v float32) int64 {
	return int64(math.RoundToEven(float64(v) * 1000.0))
}

// FoldTick folds one tick's rounded state (x, y, vx, vy, grounded) into the
// accumulator. Calling this once per tick over a whole run reproduces the
// reference trajectory checksum.
func (a *Accumulator) FoldTick(x, y, vx, vy float32, grounded bool) {
	a.Fold(Round(x), Round(y), Round(vx), Round(vy), boolInt(grounded))
}

// FinalStateHash computes the cross-target parity hash over a run's final
// state and cumulative event counts: milli-quantized x, y, vx, vy, then
// grounded and the jumped/landed/bonked totals.
func FinalStateHash(x, y, vx, vy float32, grounded bool, jumped, landed, bonked int) uint64 {
	a := NewAccumulator()
	a.Fold(
		Quantize(x),
		Quantize(y),
		Quantize(vx),
		Quantize(vy),
		boolInt(grounded),
		int64(jumped),
		int64(landed),
		int64(bonked),
	)
	return a.Sum64()
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
