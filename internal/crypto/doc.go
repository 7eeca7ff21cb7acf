// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic core of the document engine.
//
// Building blocks, leaves first:
//
//	SecureRandomString  unbiased random strings (identifiers, passwords)
//	DeriveKey           PBKDF2-HMAC-SHA256, password + salt -> AES-256 key
//	DerivePassword      HKDF-SHA256, content fingerprint -> deterministic password
//	Encrypt / Decrypt   AES-256-GCM with a detached 128-bit tag
//	DedupeTagger        HMAC-SHA256 blinding of content fingerprints
//
// [DocumentCrypto] glues them together for the service layer. Every
// decryption failure collapses into [ErrAuthFailure] so callers cannot tell a
// wrong password from tampered data.
package crypto
