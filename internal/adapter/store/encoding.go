package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeVector converts a float64 vector to its artifact BLOB form:
// little-endian, 8 bytes per component.
func EncodeVector(vec []float64) []byte {
	out := make([]byte, 8*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}
	return out
}

// DecodeVector converts an artifact BLOB back to a float64 vector. The
// input length must be a multiple of 8 bytes.
func DecodeVector(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("vector blob length %d is not a multiple of 8", len(data))
	}
	vec := make([]float64, len(data)/8)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return vec, nil
}
