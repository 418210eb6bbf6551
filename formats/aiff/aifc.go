// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/untwist/internal/pcm"
)

// aifcVersion is the only FVER timestamp defined for AIFF-C.
const aifcVersion = 0xA2805140

// floatName is the compression name written with fl64.
const floatName = "64-bit floating point"

// floatStream describes the sound data of an AIFF-C float file.
type floatStream struct {
	channels   int
	sampleRate int
	bits       int
	data       io.Reader
}

// putExtended stores v as an 80-bit IEEE extended float.
func putExtended(b []byte, v float64) {
	if v <= 0 {
		clear(b[:10])
		return
	}

	frac, exp := math.Frexp(v)
	binary.BigEndian.PutUint16(b, uint16(exp-1+16383))
	binary.BigEndian.PutUint64(b[2:], uint64(math.Ldexp(frac, 64)))
}

func extended(b []byte) float64 {
	exp := int(binary.BigEndian.Uint16(b) & 0x7FFF)
	mant := binary.BigEndian.Uint64(b[2:])
	if exp == 0 && mant == 0 {
		return 0
	}
	return math.Ldexp(float64(mant), exp-16383-63)
}

// writeFloat64 writes an AIFF-C file holding interleaved 64-bit floats.
// All sizes are known up front, so w need not seek.
func writeFloat64(w io.Writer, sampleRate, channels int, samples []float64) error {
	dataSize := len(samples) * 8
	name := append([]byte{byte(len(floatName))}, floatName...)
	if len(name)%2 == 1 {
		name = append(name, 0)
	}
	commSize := 18 + 4 + len(name)

	hdr := new(bytes.Buffer)
	hdr.WriteString("FORM")
	_ = binary.Write(hdr, binary.BigEndian, uint32(4+12+8+commSize+16+dataSize))
	hdr.WriteString("AIFC")

	hdr.WriteString("FVER")
	_ = binary.Write(hdr, binary.BigEndian, uint32(4))
	_ = binary.Write(hdr, binary.BigEndian, uint32(aifcVersion))

	hdr.WriteString("COMM")
	_ = binary.Write(hdr, binary.BigEndian, uint32(commSize))
	_ = binary.Write(hdr, binary.BigEndian, int16(channels))
	_ = binary.Write(hdr, binary.BigEndian, uint32(len(samples)/channels))
	_ = binary.Write(hdr, binary.BigEndian, int16(64))
	rate := make([]byte, 10)
	putExtended(rate, float64(sampleRate))
	hdr.Write(rate)
	hdr.WriteString("fl64")
	hdr.Write(name)

	hdr.WriteString("SSND")
	_ = binary.Write(hdr, binary.BigEndian, uint32(8+dataSize))
	_ = binary.Write(hdr, binary.BigEndian, [2]uint32{}) // offset, block size

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunk = 8192
	buf := make([]byte, 0, min(len(samples), chunk)*8)
	for i := 0; i < len(samples); i += chunk {
		out := pcm.AppendFloat64s(buf[:0], binary.BigEndian, samples[i:min(i+chunk, len(samples))])
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// readFloat parses rs when it is an AIFF-C file with fl32 or fl64 sound
// data. For anything else it rewinds rs and returns nil so that go-audio
// can take over.
func readFloat(rs io.ReadSeeker) (*floatStream, error) {
	var form [12]byte
	if _, err := io.ReadFull(rs, form[:]); err != nil || string(form[0:4]) != "FORM" || string(form[8:12]) != "AIFC" {
		_, serr := rs.Seek(0, io.SeekStart)
		return nil, serr
	}

	var (
		fs       floatStream
		compress string
		ssndPos  int64 = -1
		ssndSize int64
	)

	for {
		var hdr [8]byte
		if _, err := io.ReadFull(rs, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
		}
		id := string(hdr[:4])
		size := int64(binary.BigEndian.Uint32(hdr[4:]))
		skip := size + size&1

		switch id {
		case "COMM":
			if size < 22 {
				return nil, ErrUnsupportedAiffLayout
			}
			comm := make([]byte, size)
			if _, err := io.ReadFull(rs, comm); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
			}
			fs.channels = int(int16(binary.BigEndian.Uint16(comm)))
			fs.sampleRate = int(math.Round(extended(comm[8:18])))
			compress = string(comm[18:22])
			skip = size & 1
		case "SSND":
			pos, err := rs.Seek(0, io.SeekCurrent)
			if err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			ssndPos, ssndSize = pos, size
		}

		if _, err := rs.Seek(skip, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	switch compress {
	case "fl32", "FL32":
		fs.bits = 32
	case "fl64", "FL64":
		fs.bits = 64
	default:
		_, err := rs.Seek(0, io.SeekStart)
		return nil, err
	}

	if ssndPos < 0 || ssndSize < 8 || fs.channels <= 0 || fs.sampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	var offset [8]byte
	if _, err := rs.Seek(ssndPos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if _, err := io.ReadFull(rs, offset[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	lead := int64(binary.BigEndian.Uint32(offset[:4]))
	if _, err := rs.Seek(lead, io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	fs.data = io.LimitReader(rs, ssndSize-8-lead)

	return &fs, nil
}
