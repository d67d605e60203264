// Package snapshot wraps an encoded dictionary in a small binary envelope
// suitable for persistence: a magic marker, a format version, the
// compression scheme, and a checksum of the plain payload so corruption is
// detected before the payload is handed back to a decoder.
//
// Envelope layout:
//
//	offset 0  "ADSN"                       magic, 4 bytes
//	offset 4  version                      1 byte
//	offset 5  compression                  1 byte
//	offset 6  xxh3 of the plain payload    8 bytes, big endian
//	offset 14 compressed payload
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/xxh3"
)

// Compression selects the payload compression scheme.
type Compression byte

const (
	None Compression = iota
	Gzip
	Zstd
	Brotli
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", byte(c))
	}
}

const (
	magic      = "ADSN"
	version    = 1
	headerSize = len(magic) + 1 + 1 + 8
)

var (
	// ErrTooShort is returned when the envelope cannot hold a header.
	ErrTooShort = errors.New("snapshot envelope too short")

	// ErrBadMagic is returned when the input does not start with the
	// snapshot marker.
	ErrBadMagic = errors.New("not a snapshot envelope")

	// ErrUnknownVersion is returned for envelope versions this package
	// does not understand.
	ErrUnknownVersion = errors.New("unknown snapshot version")

	// ErrUnknownCompression is returned for compression bytes this
	// package does not understand.
	ErrUnknownCompression = errors.New("unknown snapshot compression")

	// ErrChecksum is returned when the decompressed payload does not
	// match the recorded checksum.
	ErrChecksum = errors.New("snapshot payload checksum mismatch")
)

// Pack wraps payload in an envelope, compressing it with the given scheme.
// The checksum always covers the plain payload, so Unpack verifies
// integrity after decompression regardless of scheme.
func Pack(payload []byte, c Compression) ([]byte, error) {
	compressed, err := compress(c, payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+len(compressed))
	copy(out, magic)
	out[4] = version
	out[5] = byte(c)
	binary.BigEndian.PutUint64(out[6:14], xxh3.Hash(payload))

	return append(out, compressed...), nil
}

// Unpack validates an envelope and returns the plain payload.
func Unpack(envelope []byte) ([]byte, error) {
	if len(envelope) < headerSize {
		return nil, ErrTooShort
	}

	if !bytes.Equal(envelope[:4], []byte(magic)) {
		return nil, ErrBadMagic
	}

	if envelope[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, envelope[4])
	}

	c := Compression(envelope[5])
	sum := binary.BigEndian.Uint64(envelope[6:14])

	payload, err := decompress(c, envelope[headerSize:])
	if err != nil {
		return nil, err
	}

	if xxh3.Hash(payload) != sum {
		return nil, ErrChecksum
	}

	return payload, nil
}

func compress(c Compression, payload []byte) ([]byte, error) {
	if c == None {
		return payload, nil
	}

	var buf bytes.Buffer

	w, err := compressor(c, &buf)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(payload); err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}

	return buf.Bytes(), nil
}

func compressor(c Compression, buf *bytes.Buffer) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(buf), nil
	case Zstd:
		w, err := zstd.NewWriter(buf)
		if err != nil {
			return nil, fmt.Errorf("creating zstd writer: %w", err)
		}

		return w, nil
	case Brotli:
		return brotli.NewWriter(buf), nil
	case LZ4:
		return lz4.NewWriter(buf), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, byte(c))
	}
}

func decompress(c Compression, data []byte) ([]byte, error) {
	var r io.Reader

	switch c {
	case None:
		return data, nil
	case Gzip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompressing payload: %w", err)
		}
		defer gr.Close()

		r = gr
	case Zstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompressing payload: %w", err)
		}
		defer zr.Close()

		r = zr
	case Brotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case LZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, byte(c))
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	return payload, nil
}
