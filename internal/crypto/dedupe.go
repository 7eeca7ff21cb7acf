// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// TagMode tells how a [DedupeTagger] blinds fingerprints.
type TagMode string

const (
	// TagModePeppered computes HMAC-SHA256(pepper, fingerprint).
	TagModePeppered TagMode = "peppered"

	// TagModeUnpeppered stores the raw fingerprint. Development only: the
	// tag then equals a plain content hash and links documents across
	// deployments.
	TagModeUnpeppered TagMode = "unpeppered"
)

// DedupeTagger turns content fingerprints into opaque tags that support only
// exact equality lookups.
type DedupeTagger struct {
	mode TagMode
	pool sync.Pool
}

// NewDedupeTagger builds a tagger keyed with pepper. An empty pepper is
// accepted only when allowUnpeppered is set, and then the tagger runs in
// [TagModeUnpeppered]; otherwise [ErrMissingPepper] is returned.
func NewDedupeTagger(pepper string, allowUnpeppered bool) (*DedupeTagger, error) {
	if pepper == "" {
		if !allowUnpeppered {
			return nil, ErrMissingPepper
		}
		return &DedupeTagger{mode: TagModeUnpeppered}, nil
	}

	key := []byte(pepper)
	t := &DedupeTagger{mode: TagModePeppered}
	t.pool.New = func() any {
		return hmac.New(sha256.New, key)
	}

	return t, nil
}

// Mode reports the configured blinding mode.
func (t *DedupeTagger) Mode() TagMode {
	return t.mode
}

// Tag returns the hex tag for fingerprint.
func (t *DedupeTagger) Tag(fingerprint string) string {
	if t.mode == TagModeUnpeppered {
		return fingerprint
	}

	h := t.pool.Get().(hash.Hash)
	h.Reset()
	h.Write([]byte(fingerprint))
	sum := h.Sum(nil)
	h.Reset()
	t.pool.Put(h)

	return hex.EncodeToString(sum)
}
