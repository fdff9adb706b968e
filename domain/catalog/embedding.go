package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrNoEmbedding indicates the document carries no embedding blob.
var ErrNoEmbedding = errors.New("document has no embedding")

// ErrInvalidEmbedding indicates the stored blob is not a sequence of
// packed 32-bit floats.
var ErrInvalidEmbedding = errors.New("embedding blob length is not a multiple of 4")

// Embedding is a vector of 32-bit floats, stored by the crawler as a
// packed little-endian byte blob.
type Embedding []float32

// DecodeEmbedding reinterprets a packed little-endian float32 blob as an
// Embedding. The blob length must be a multiple of 4 bytes.
func DecodeEmbedding(blob []byte) (Embedding, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidEmbedding, len(blob))
	}
	vec := make(Embedding, len(blob)/4)
	for i := range vec {
		bits := binary.LittleEndian.Uint32(blob[i*4:])
		vec[i] = math.Float32frombits(bits)
	}
	return vec, nil
}

// Dim returns the number of components.
func (e Embedding) Dim() int { return len(e) }
