// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"filippo.io/age"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// WriterOptions configures a capture writer. The zero value writes an
// uncompressed, unencrypted capture stamped with the current time.
type WriterOptions struct {
	// Codec selects record stream compression.
	Codec Codec

	// Labels are stored in the capture header.
	Labels map[string]string

	// Recipients are age public keys in age1... format. When
	// non-empty, the whole container is encrypted to them and can
	// only be opened with a matching identity.
	Recipients []string

	// Created overrides the header timestamp. Zero means now.
	Created time.Time
}

// Writer appends records to a new capture file. It holds an exclusive
// flock on the file for its lifetime, so a second recorder pointed at
// the same path fails fast instead of interleaving output.
//
// Records are buffered; nothing is durable until Close returns.
type Writer struct {
	file       *os.File
	buffered   *bufio.Writer
	container  io.Writer // buffered, or the age encryptor over it
	encryptor  io.WriteCloser
	compressor io.WriteCloser
	stream     io.Writer // compressor when present, else container
	hasher     *blake3.Hasher
	count      uint64
	closed     bool
}

// Create opens path for writing and lays down the capture prelude and
// header. An existing file is truncated once the lock is held; a file
// locked by another writer is an error.
func Create(path string, options WriterOptions) (*Writer, error) {
	// Parse recipients before touching the filesystem.
	recipients := make([]age.Recipient, 0, len(options.Recipients))
	for _, key := range options.Recipients {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating capture file: %w", err)
	}

	// Lock before truncating: a losing writer must fail here
	// without having destroyed the winner's output.
	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		return nil, fmt.Errorf("locking %s (held by another writer?): %w", path, err)
	}
	if err := file.Truncate(0); err != nil {
		file.Close()
		return nil, fmt.Errorf("truncating %s: %w", path, err)
	}

	writer := &Writer{
		file:     file,
		buffered: bufio.NewWriter(file),
		hasher:   blake3.New(),
	}
	writer.container = writer.buffered

	if len(recipients) > 0 {
		encryptor, err := age.Encrypt(writer.buffered, recipients...)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("creating age encryptor: %w", err)
		}
		writer.encryptor = encryptor
		writer.container = encryptor
	}

	if err := writer.writePrelude(options.Codec); err != nil {
		file.Close()
		return nil, err
	}

	created := options.Created
	if created.IsZero() {
		created = time.Now()
	}
	if err := writer.writeHeader(Header{Created: created, Labels: options.Labels}); err != nil {
		file.Close()
		return nil, err
	}

	switch options.Codec {
	case CodecNone:
		writer.stream = writer.container

	case CodecZstd:
		encoder, err := zstd.NewWriter(writer.container,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
		)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("creating zstd encoder: %w", err)
		}
		writer.compressor = encoder
		writer.stream = encoder

	case CodecLZ4:
		writer.compressor = lz4.NewWriter(writer.container)
		writer.stream = writer.compressor

	default:
		file.Close()
		return nil, fmt.Errorf("unsupported capture codec: %d", options.Codec)
	}

	return writer, nil
}

func (w *Writer) writePrelude(codec Codec) error {
	var prelude [preludeSize]byte
	copy(prelude[:], captureMagic[:])
	prelude[5] = captureVersion
	prelude[6] = byte(codec)
	if _, err := w.container.Write(prelude[:]); err != nil {
		return fmt.Errorf("writing capture prelude: %w", err)
	}
	return nil
}

func (w *Writer) writeHeader(header Header) error {
	encoded, err := encMode.Marshal(header)
	if err != nil {
		return fmt.Errorf("encoding capture header: %w", err)
	}
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(encoded)))
	if _, err := w.container.Write(length[:]); err != nil {
		return fmt.Errorf("writing header length: %w", err)
	}
	if _, err := w.container.Write(encoded); err != nil {
		return fmt.Errorf("writing capture header: %w", err)
	}
	return nil
}

// Append encodes one record onto the capture. Records are read back
// in append order.
func (w *Writer) Append(record Record) error {
	if w.closed {
		return fmt.Errorf("capture writer is closed")
	}
	encoded, err := encMode.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding capture record: %w", err)
	}
	if len(encoded) > maxRecordSize {
		return fmt.Errorf("record is %d bytes, limit is %d", len(encoded), maxRecordSize)
	}
	if err := w.writeFrame(encoded); err != nil {
		return err
	}
	w.count++
	return nil
}

// writeFrame writes a length-prefixed record (or the zero-length
// stream terminator) into the record stream, folding the same bytes
// into the running digest.
func (w *Writer) writeFrame(encoded []byte) error {
	target := io.MultiWriter(w.stream, w.hasher)

	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(encoded)))
	if _, err := target.Write(length[:]); err != nil {
		return fmt.Errorf("writing record length: %w", err)
	}
	if len(encoded) == 0 {
		return nil
	}
	if _, err := target.Write(encoded); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Count returns the number of records appended so far.
func (w *Writer) Count() uint64 {
	return w.count
}

// Close terminates the record stream, writes the trailer, flushes,
// and releases the file along with its lock. Idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.writeFrame(nil); err != nil {
		w.file.Close()
		return err
	}
	if w.compressor != nil {
		if err := w.compressor.Close(); err != nil {
			w.file.Close()
			return fmt.Errorf("finalizing compressed record stream: %w", err)
		}
	}

	var trailer [trailerSize]byte
	binary.LittleEndian.PutUint64(trailer[:8], w.count)
	copy(trailer[8:], w.hasher.Sum(nil))
	if _, err := w.container.Write(trailer[:]); err != nil {
		w.file.Close()
		return fmt.Errorf("writing capture trailer: %w", err)
	}

	if w.encryptor != nil {
		if err := w.encryptor.Close(); err != nil {
			w.file.Close()
			return fmt.Errorf("finalizing age encryption: %w", err)
		}
	}
	if err := w.buffered.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("flushing capture file: %w", err)
	}

	// Closing the descriptor releases the flock.
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing capture file: %w", err)
	}
	return nil
}
