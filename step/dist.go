// SPDX-License-Identifier: MIT

package step

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Dist is a numeric estimate in which +Inf means "no path" / "unreachable".
// It encodes +Inf as JSON null and decodes null back to +Inf.
type Dist float64

// Inf is the "no path" value.
var Inf = Dist(math.Inf(1))

// IsInf reports whether d is +Inf.
func (d Dist) IsInf() bool { return math.IsInf(float64(d), 1) }

// String renders d, using "∞" for +Inf.
func (d Dist) String() string {
	if d.IsInf() {
		return "∞"
	}

	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (d Dist) MarshalJSON() ([]byte, error) {
	if d.IsInf() || math.IsNaN(float64(d)) {
		return []byte("null"), nil
	}

	return json.Marshal(float64(d))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dist) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Inf
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Dist(f)

	return nil
}

// CloneDists returns an independent copy of s.
func CloneDists(s []Dist) []Dist {
	if s == nil {
		return nil
	}
	out := make([]Dist, len(s))
	copy(out, s)

	return out
}

// CloneDistMatrix deep-copies a 2-D Dist slice.
func CloneDistMatrix(m [][]Dist) [][]Dist {
	if m == nil {
		return nil
	}
	out := make([][]Dist, len(m))
	for i := range m {
		out[i] = CloneDists(m[i])
	}

	return out
}

// CloneBoolMatrix deep-copies a 2-D bool slice.
func CloneBoolMatrix(m [][]bool) [][]bool {
	if m == nil {
		return nil
	}
	out := make([][]bool, len(m))
	for i := range m {
		out[i] = make([]bool, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}
