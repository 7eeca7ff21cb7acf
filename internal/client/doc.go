// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses the subcommand left over by configuration loading, reads
// documents and passwords from files or the terminal, and delegates to the
// client document service. Documents are encrypted and decrypted locally.
package client
