// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package voice

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// ModeXSalsa20Poly1305 is the media encryption mode this package
// implements. Servers offer several; this is the one every server
// supports.
const ModeXSalsa20Poly1305 = "xsalsa20_poly1305"

// SealOverhead is the growth of a sealed payload over its plaintext.
const SealOverhead = secretbox.Overhead

// SelectMode picks the encryption mode to answer a Ready offer with,
// for the SelectProtocol command.
func (r *Ready) SelectMode() (string, error) {
	for _, mode := range r.Modes {
		if mode == ModeXSalsa20Poly1305 {
			return mode, nil
		}
	}
	return "", fmt.Errorf("no supported encryption mode in %v", r.Modes)
}

// Seal encrypts and authenticates one media payload under the session
// key, appending the result to dst. The nonce must never repeat for
// this key; the transport derives it from the RTP header.
func (d *SessionDescription) Seal(dst, plaintext []byte, nonce [24]byte) []byte {
	key := d.SecretKey
	return secretbox.Seal(dst, plaintext, &nonce, &key)
}

// Open authenticates and decrypts a payload sealed by a peer,
// appending the plaintext to dst. It reports false for any tampered
// or miskeyed box.
func (d *SessionDescription) Open(dst, box []byte, nonce [24]byte) ([]byte, bool) {
	key := d.SecretKey
	return secretbox.Open(dst, box, &nonce, &key)
}
