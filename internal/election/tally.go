package election

import (
	"math/big"
	"math/bits"
)

// Tally is an unsigned 128-bit vote count, wide enough that summing any
// number of uint64 counts seen in practice cannot overflow.
type Tally struct {
	hi, lo uint64
}

// TallyOf returns a Tally holding v.
func TallyOf(v uint64) Tally {
	return Tally{lo: v}
}

// Add returns t + v.
func (t Tally) Add(v uint64) Tally {
	lo, carry := bits.Add64(t.lo, v, 0)
	return Tally{hi: t.hi + carry, lo: lo}
}

// Plus returns t + u.
func (t Tally) Plus(u Tally) Tally {
	lo, carry := bits.Add64(t.lo, u.lo, 0)
	hi, _ := bits.Add64(t.hi, u.hi, carry)
	return Tally{hi: hi, lo: lo}
}

// Uint64 returns the tally and whether it fits in 64 bits.
func (t Tally) Uint64() (uint64, bool) {
	return t.lo, t.hi == 0
}

// Big returns the tally as a big.Int.
func (t Tally) Big() *big.Int {
	b := new(big.Int).SetUint64(t.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(t.lo))
}

func (t Tally) String() string {
	return t.Big().String()
}

// MarshalJSON encodes the tally as a bare JSON number.
func (t Tally) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalJSON decodes a bare JSON number.
func (t *Tally) UnmarshalJSON(data []byte) error {
	b, ok := new(big.Int).SetString(string(data), 10)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return &TallyError{Value: string(data)}
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	*t = Tally{hi: new(big.Int).Rsh(b, 64).Uint64(), lo: lo.Uint64()}
	return nil
}

// TallyError reports a value that is not a valid tally.
type TallyError struct {
	Value string
}

func (e *TallyError) Error() string {
	return "invalid number for tally: " + e.Value
}

// Less reports whether t < u.
func (t Tally) Less(u Tally) bool {
	if t.hi != u.hi {
		return t.hi < u.hi
	}
	return t.lo < u.lo
}
