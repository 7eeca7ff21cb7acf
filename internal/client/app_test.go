// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/MKhiriev/go-seal-doc/models"
)

// fakeDocuments records calls and returns canned results.
type fakeDocuments struct {
	shared     []string
	opened     []string
	remote     []string
	passwords  []string
	shareRes   models.ShareResult
	openRes    string
	err        error
	serverInfo models.AppInfo
}

func (f *fakeDocuments) Share(_ context.Context, markdown string) (models.ShareResult, error) {
	f.shared = append(f.shared, markdown)
	return f.shareRes, f.err
}

func (f *fakeDocuments) Open(_ context.Context, id, password string) (string, error) {
	f.opened = append(f.opened, id)
	f.passwords = append(f.passwords, password)
	return f.openRes, f.err
}

func (f *fakeDocuments) OpenRemote(_ context.Context, id, password string) (string, error) {
	f.remote = append(f.remote, id)
	f.passwords = append(f.passwords, password)
	return f.openRes, f.err
}

func (f *fakeDocuments) ServerInfo(context.Context) (models.AppInfo, error) {
	return f.serverInfo, f.err
}

type testApp struct {
	app    *App
	docs   *fakeDocuments
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	copied []string
}

func newTestApp(t *testing.T, stdin string, args ...string) *testApp {
	t.Helper()

	ta := &testApp{
		docs:   &fakeDocuments{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	app, err := NewApp(
		&service.ClientServices{DocumentService: ta.docs},
		args,
		logger.Nop(),
		WithIO(strings.NewReader(stdin), ta.stdout, ta.stderr),
		WithClipboard(func(s string) error {
			ta.copied = append(ta.copied, s)
			return nil
		}),
	)
	require.NoError(t, err)
	ta.app = app
	return ta
}

func TestNewApp_NilServices(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	require.Error(t, err)
}

func TestRun_NoCommand(t *testing.T) {
	ta := newTestApp(t, "")

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, ta.stderr.String(), "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	ta := newTestApp(t, "", "publish")

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_Help(t *testing.T) {
	ta := newTestApp(t, "", "help")

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Contains(t, ta.stdout.String(), "share")
}

// ── share ────────────────────────────────────────────────────────────────────

func TestShare_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hello\n\nworld\n"), 0o600))

	ta := newTestApp(t, "", "share", "-copy", path)
	ta.docs.shareRes = models.ShareResult{
		ID:       "AbCdEfGhJk23",
		Password: "jdaMURba46uRptMm2rrjZuNv",
		ReadURL:  "http://localhost:8080/r/AbCdEfGhJk23",
	}

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, []string{"# Hello\n\nworld\n"}, ta.docs.shared)
	out := ta.stdout.String()
	assert.Contains(t, out, "AbCdEfGhJk23")
	assert.Contains(t, out, "jdaMURba46uRptMm2rrjZuNv")
	assert.Contains(t, out, "http://localhost:8080/r/AbCdEfGhJk23")
	assert.Equal(t, []string{"jdaMURba46uRptMm2rrjZuNv"}, ta.copied)
}

func TestShare_FromStdinDeduplicated(t *testing.T) {
	ta := newTestApp(t, "# piped", "share", "-")
	ta.docs.shareRes = models.ShareResult{ID: "AbCdEfGhJk23", Deduplicated: true}

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, []string{"# piped"}, ta.docs.shared)
	assert.Contains(t, ta.stdout.String(), "reused")
	assert.Empty(t, ta.copied)
}

func TestShare_MissingFileArgument(t *testing.T) {
	ta := newTestApp(t, "", "share")

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, ErrUsage)
	assert.Empty(t, ta.docs.shared)
}

func TestShare_ServiceError(t *testing.T) {
	ta := newTestApp(t, "# x", "share", "-")
	ta.docs.err = service.ErrRateLimited

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrRateLimited)
}

// ── open ─────────────────────────────────────────────────────────────────────

func TestOpen_PasswordFromStdin(t *testing.T) {
	ta := newTestApp(t, "secret-password\n", "open", "http://localhost:8080/r/AbCdEfGhJk23")
	ta.docs.openRes = "# Hello"

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, []string{"AbCdEfGhJk23"}, ta.docs.opened)
	assert.Equal(t, []string{"secret-password"}, ta.docs.passwords)
	assert.Equal(t, "# Hello\n", ta.stdout.String())
}

func TestOpen_RemoteWithPasswordFlag(t *testing.T) {
	ta := newTestApp(t, "", "open", "-remote", "-password", "pw", "AbCdEfGhJk23")
	ta.docs.openRes = "# Hello"

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Empty(t, ta.docs.opened)
	assert.Equal(t, []string{"AbCdEfGhJk23"}, ta.docs.remote)
	assert.Equal(t, []string{"pw"}, ta.docs.passwords)
}

func TestOpen_WritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	ta := newTestApp(t, "", "open", "-password", "pw", "-o", path, "AbCdEfGhJk23")
	ta.docs.openRes = "# Saved"

	require.NoError(t, ta.app.Run(context.Background()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Saved", string(b))
	assert.Empty(t, ta.stdout.String())
}

func TestOpen_AuthFailure(t *testing.T) {
	ta := newTestApp(t, "", "open", "-password", "wrong", "AbCdEfGhJk23")
	ta.docs.err = service.ErrAuthFailure

	err := ta.app.Run(context.Background())
	assert.True(t, errors.Is(err, service.ErrAuthFailure))
}

// ── info ─────────────────────────────────────────────────────────────────────

func TestInfo(t *testing.T) {
	ta := newTestApp(t, "", "info")
	ta.docs.serverInfo = models.AppInfo{Version: "1.0.0", ExpiryWindow: "48h0m0s", DedupeMode: "peppered"}

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.stdout.String(), "1.0.0")
	assert.Contains(t, ta.stdout.String(), "48h0m0s")
}

func TestParseDocumentRef(t *testing.T) {
	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{ref: "AbCdEfGhJk23", want: "AbCdEfGhJk23"},
		{ref: " AbCdEfGhJk23 ", want: "AbCdEfGhJk23"},
		{ref: "https://seal.example.com/r/AbCdEfGhJk23", want: "AbCdEfGhJk23"},
		{ref: "https://seal.example.com/r/AbCdEfGhJk23?x=1", want: "AbCdEfGhJk23"},
		{ref: "https://seal.example.com/r/", wantErr: true},
		{ref: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := parseDocumentRef(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
