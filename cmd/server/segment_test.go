package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type segmentOutput struct {
	Intro    string `json:"intro"`
	Sections []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Icon    string `json:"icon"`
	} `json:"sections"`
}

func runSegmentCmd(t *testing.T, stdin string, args ...string) segmentOutput {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"segment"}, args...))
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	var got segmentOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	return got
}

func TestSegmentStdin(t *testing.T) {
	got := runSegmentCmd(t, `<p>Intro</p><h2>Was wir bieten</h2><p>Gutes Team</p>`)

	assert.Equal(t, "<p>Intro</p>", got.Intro)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Was wir bieten", got.Sections[0].Title)
	assert.Equal(t, "gift", got.Sections[0].Icon)
	assert.Equal(t, "<p>Gutes Team</p>", got.Sections[0].Content)
}

func TestSegmentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.html")
	require.NoError(t, os.WriteFile(path, []byte(`<h3>Kontakt</h3><p>hr@example.ch</p>`), 0o644))

	got := runSegmentCmd(t, "", path)
	assert.Empty(t, got.Intro)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "mail", got.Sections[0].Icon)
}

func TestSegmentEmpty(t *testing.T) {
	got := runSegmentCmd(t, "")
	assert.Empty(t, got.Intro)
	assert.NotNil(t, got.Sections)
	assert.Empty(t, got.Sections)
}
