// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"filippo.io/age"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
)

// agePrelude is the start of the age format version line. Encrypted
// captures are ordinary age files wrapping the container.
var agePrelude = []byte("age-encryption.org/v1")

// Reader streams records out of a capture. The prelude, header, and
// trailer are validated when the reader is created; the record stream
// is digest-checked as the last record is read, so a caller that
// drains the reader has verified the whole file.
type Reader struct {
	// Header is the decoded capture header.
	Header Header

	// Codec is the record stream compression from the prelude.
	Codec Codec

	closer        io.Closer
	decompressed  io.Reader
	tee           io.Reader
	zstd          *zstd.Decoder
	hasher        *blake3.Hasher
	count         uint64
	trailerCount  uint64
	trailerDigest [32]byte
	err           error
}

// Open opens a capture file. For an age-encrypted capture, at least
// one identity (AGE-SECRET-KEY-1... format) matching a recipient of
// the capture must be supplied; identities are ignored for plaintext
// captures.
func Open(path string, identities ...string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening capture: %w", err)
	}

	var sniff [preludeSize]byte
	if _, err := io.ReadFull(file, sniff[:]); err != nil {
		file.Close()
		return nil, fmt.Errorf("reading capture prelude: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, fmt.Errorf("rewinding capture: %w", err)
	}

	if bytes.Equal(sniff[:len(captureMagic)], captureMagic[:]) {
		reader, err := NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		reader.closer = file
		return reader, nil
	}

	if !bytes.Equal(sniff[:], agePrelude[:preludeSize]) {
		file.Close()
		return nil, fmt.Errorf("%s is not an accord capture", path)
	}

	// Encrypted capture. age output is not seekable and the trailer
	// lives at the end, so decrypt the whole container into memory.
	if len(identities) == 0 {
		file.Close()
		return nil, fmt.Errorf("%s is age-encrypted and no identity was given", path)
	}
	parsed := make([]age.Identity, 0, len(identities))
	for _, key := range identities {
		identity, err := age.ParseX25519Identity(key)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("parsing identity: %w", err)
		}
		parsed = append(parsed, identity)
	}
	decryptor, err := age.Decrypt(file, parsed...)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("decrypting capture: %w", err)
	}
	plaintext, err := io.ReadAll(decryptor)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("reading decrypted capture: %w", err)
	}
	return NewReader(bytes.NewReader(plaintext))
}

// NewReader opens a capture from r, which must be positioned at the
// start of the container. Use Open for files; NewReader is the seam
// for captures already in memory.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	var prelude [preludeSize]byte
	if _, err := io.ReadFull(r, prelude[:]); err != nil {
		return nil, fmt.Errorf("reading capture prelude: %w", err)
	}
	if !bytes.Equal(prelude[:len(captureMagic)], captureMagic[:]) {
		return nil, fmt.Errorf("not an accord capture (invalid magic bytes)")
	}
	if prelude[5] != captureVersion {
		return nil, fmt.Errorf("capture version %d is not supported (this code supports version %d)",
			prelude[5], captureVersion)
	}
	codec := Codec(prelude[6])
	if codec > CodecLZ4 {
		return nil, fmt.Errorf("capture has unsupported codec %d", uint8(codec))
	}
	if prelude[7] != 0 {
		return nil, fmt.Errorf("capture has non-zero reserved prelude byte: %#x", prelude[7])
	}

	var lengthBytes [4]byte
	if _, err := io.ReadFull(r, lengthBytes[:]); err != nil {
		return nil, fmt.Errorf("reading header length: %w", err)
	}
	headerLength := binary.LittleEndian.Uint32(lengthBytes[:])
	if headerLength > maxRecordSize {
		return nil, fmt.Errorf("header length %d is corrupt", headerLength)
	}
	headerBytes := make([]byte, headerLength)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("reading capture header: %w", err)
	}
	var header Header
	if err := decMode.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("decoding capture header: %w", err)
	}

	recordsStart := int64(preludeSize) + 4 + int64(headerLength)

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("sizing capture: %w", err)
	}
	if size < recordsStart+trailerSize {
		return nil, fmt.Errorf("capture is truncated: %d bytes, need at least %d",
			size, recordsStart+trailerSize)
	}
	if _, err := r.Seek(size-trailerSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking capture trailer: %w", err)
	}
	var trailer [trailerSize]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, fmt.Errorf("reading capture trailer: %w", err)
	}
	if _, err := r.Seek(recordsStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking record stream: %w", err)
	}

	reader := &Reader{
		Header:       header,
		Codec:        codec,
		hasher:       blake3.New(),
		trailerCount: binary.LittleEndian.Uint64(trailer[:8]),
	}
	copy(reader.trailerDigest[:], trailer[8:])

	section := io.LimitReader(r, size-trailerSize-recordsStart)
	switch codec {
	case CodecNone:
		reader.decompressed = section
	case CodecZstd:
		decoder, err := zstd.NewReader(section)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		reader.zstd = decoder
		reader.decompressed = decoder
	case CodecLZ4:
		reader.decompressed = lz4.NewReader(section)
	}
	reader.tee = io.TeeReader(reader.decompressed, reader.hasher)

	return reader, nil
}

// Next returns the next record. After the last record, the trailer's
// count and digest are checked against the stream that was actually
// read; Next then returns io.EOF, or the verification failure. Errors
// are sticky.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	var lengthBytes [4]byte
	if _, err := io.ReadFull(r.tee, lengthBytes[:]); err != nil {
		r.err = fmt.Errorf("capture record stream is truncated: %w", err)
		return Record{}, r.err
	}
	length := binary.LittleEndian.Uint32(lengthBytes[:])
	if length == 0 {
		r.err = r.finish()
		return Record{}, r.err
	}
	if length > maxRecordSize {
		r.err = fmt.Errorf("record length %d is corrupt", length)
		return Record{}, r.err
	}

	encoded := make([]byte, length)
	if _, err := io.ReadFull(r.tee, encoded); err != nil {
		r.err = fmt.Errorf("capture record stream is truncated: %w", err)
		return Record{}, r.err
	}
	var record Record
	if err := decMode.Unmarshal(encoded, &record); err != nil {
		r.err = fmt.Errorf("decoding capture record %d: %w", r.count, err)
		return Record{}, r.err
	}
	r.count++
	return record, nil
}

// finish runs after the stream terminator: nothing may follow the
// terminator, and the trailer's count and digest must match what was
// read.
func (r *Reader) finish() error {
	var scratch [1]byte
	if _, err := io.ReadFull(r.decompressed, scratch[:]); err == nil {
		return fmt.Errorf("capture has data after the record stream terminator")
	} else if err != io.EOF {
		return fmt.Errorf("draining record stream: %w", err)
	}
	if r.count != r.trailerCount {
		return fmt.Errorf("capture trailer claims %d records, stream contains %d",
			r.trailerCount, r.count)
	}
	if !bytes.Equal(r.hasher.Sum(nil), r.trailerDigest[:]) {
		return fmt.Errorf("capture record stream digest does not match trailer")
	}
	return io.EOF
}

// ReadAll drains the reader and returns every remaining record. The
// capture is fully verified when ReadAll returns without error.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		record, err := r.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}

// Count returns the number of records returned so far.
func (r *Reader) Count() uint64 {
	return r.count
}

// Close releases the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.zstd != nil {
		r.zstd.Close()
		r.zstd = nil
	}
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}
