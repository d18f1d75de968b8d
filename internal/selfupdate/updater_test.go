package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "wortiz_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "wortiz_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "wortiz_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "wortiz_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "wortiz_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "wortiz_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "wortiz_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "goreleaser format",
			input: "abc123  wortiz_Darwin_all.tar.gz\ndef456  wortiz_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"wortiz_Darwin_all.tar.gz":   "abc123",
				"wortiz_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksums([]byte(tt.input)))
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho wortiz")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "wortiz", binaryContent)
		got, err := extractBinary(archive, "wortiz_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "wortiz_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "wortiz")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)

	require.NoError(t, applyUpdate(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// The new binary must stay executable.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub release: the latest-release API
// endpoint plus download URLs for the asset and its checksums file.
func releaseServer(t *testing.T, tag string, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/abhisek/wortiz/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/abhisek/wortiz/releases/download/%s/%s", tag, asset):
			_, _ = w.Write(archive)
		case fmt.Sprintf("/abhisek/wortiz/releases/download/%s/checksums.txt", tag):
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	const asset = "wortiz_Darwin_all.tar.gz"

	binaryContent := []byte("new-wortiz-binary")
	archive := buildTarGz(t, "wortiz", binaryContent)
	archiveHash := sha256.Sum256(archive)
	checksums := fmt.Appendf(nil, "%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "wortiz")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", asset, archive, checksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("pinned target skips check", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "wortiz")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", asset, archive, checksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		input := &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v2.0.0"}
		err := checker.Update(context.Background(), input, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", asset, archive, checksums)
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badChecksums := fmt.Appendf(nil, "%s  %s\n",
			"0000000000000000000000000000000000000000000000000000000000000000", asset)

		server := releaseServer(t, "v2.0.0", asset, archive, badChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		// Serve only the release metadata; every download 404s.
		server := releaseServer(t, "v2.0.0", asset, nil, nil)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(fmt.Sprintf("%s/missing", server.URL)),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
