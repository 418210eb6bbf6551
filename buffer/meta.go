// SPDX-License-Identifier: EPL-2.0

package buffer

// Unknown is the value of a metadata field that was never set.
const Unknown = 0

// Meta is the metadata a buffer carries through arithmetic.
//
// WindowSize and HopSize are only meaningful for spectral buffers and stay
// Unknown on time-domain ones.
type Meta struct {
	SampleRate int
	WindowSize int
	HopSize    int
}

// IsZero reports whether no field of m is set.
func (m Meta) IsZero() bool {
	return m == Meta{}
}

// Pick returns the first non-zero Meta in order, or the zero Meta.
//
// Derived buffers use it to decide which operand their metadata comes from:
// the left operand wins when both carry metadata.
func Pick(ms ...Meta) Meta {
	for _, m := range ms {
		if !m.IsZero() {
			return m
		}
	}

	return Meta{}
}
