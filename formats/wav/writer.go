// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/untwist/internal/pcm"
)

// chunkSize is the number of samples converted per write.
const chunkSize = 8192

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return writePCM16(w, sampleRate, 1, samples)
}

// header returns a canonical 44-byte header. It needs no seeking, so the
// writers below also serve pipes and buffers.
func header(format, bits, sampleRate, channels int, dataSize uint32) []byte {
	blockAlign := uint16(channels * bits / 8)

	h := make([]byte, 44)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], uint16(format))
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate)*uint32(blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], uint16(bits))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

// writePCM16 writes a header followed by interleaved 16-bit samples.
func writePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if _, err := w.Write(header(formatPCM, 16, sampleRate, channels, uint32(len(samples)*2))); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// writeFloat64 writes a header followed by interleaved 64-bit IEEE floats,
// bit for bit.
func writeFloat64(w io.Writer, sampleRate, channels int, samples []float64) error {
	if _, err := w.Write(header(formatFloat, 64, sampleRate, channels, uint32(len(samples)*8))); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, 0, min(len(samples), chunkSize)*8)

	for i := 0; i < len(samples); i += chunkSize {
		out := pcm.AppendFloat64s(buf[:0], binary.LittleEndian, samples[i:min(i+chunkSize, len(samples))])
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
