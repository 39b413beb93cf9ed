package cms

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/schaltkraft/website/internal/content"
)

func seedContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "pages/services.yaml", `
title: Dienstleistungen
blocks:
  - discriminant: hero
    value:
      headline: Unsere Stärken
  - discriminant: intro
    value:
      text: Hallo
`)
	writeFile(t, dir, "services/solar.yaml", "title: Solar\norder: 2\n")
	writeFile(t, dir, "services/elektro.yml", "title: Elektroinstallation\norder: 1\nshortDescription: Alles rund um Strom\n")
	writeFile(t, dir, "services/automation.yaml", "title: Automation\norder: 2\n")
	writeFile(t, dir, "services/readme.txt", "ignored")
	writeFile(t, dir, "jobs/elektriker.yaml", `
title: Elektroinstallateur EFZ
published: true
descriptionMarkdown: |
  Wir wachsen.

  ## Deine Aufgaben

  - Installationen
`)
	writeFile(t, dir, "jobs/entwurf.yaml", "title: Entwurf\npublished: false\n")
	return dir
}

func TestFileSource_Load(t *testing.T) {
	src, err := NewFileSource(seedContent(t), discardLogger())
	require.NoError(t, err)
	ctx := context.Background()

	page, err := src.Page(ctx, "services")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "services", page.Slug, "slug defaults to the file name")
	require.Len(t, page.Blocks, 2)
	assert.Equal(t, content.Hero{Headline: "Unsere Stärken"}, page.Blocks[0].Value)

	missing, err := src.Page(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	services, err := src.Services(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, []string{"elektro", "automation", "solar"}, []string{services[0].Slug, services[1].Slug, services[2].Slug})

	sv, err := src.Service(ctx, "elektro")
	require.NoError(t, err)
	require.NotNil(t, sv)
	assert.Equal(t, "Alles rund um Strom", sv.ShortDescription)

	jobs, err := src.Jobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1, "unpublished jobs are hidden")
	assert.Contains(t, jobs[0].Description, "<h2>Deine Aufgaben</h2>")

	hidden, err := src.Job(ctx, "entwurf")
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestFileSource_MissingDirectoriesAreEmpty(t *testing.T) {
	src, err := NewFileSource(t.TempDir(), discardLogger())
	require.NoError(t, err)
	services, err := src.Services(context.Background())
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestFileSource_ReloadErrorKeepsSnapshot(t *testing.T) {
	dir := seedContent(t)
	src, err := NewFileSource(dir, discardLogger())
	require.NoError(t, err)

	writeFile(t, dir, "pages/broken.yaml", "blocks:\n  - value: {}\n")
	assert.Error(t, src.Reload())

	page, err := src.Page(context.Background(), "services")
	require.NoError(t, err)
	assert.NotNil(t, page)
}

func TestFileSource_InvalidContentFailsConstruction(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jobs/bad.yaml", "title: [unterminated\n")
	_, err := NewFileSource(dir, discardLogger())
	assert.Error(t, err)
}

func TestFileSource_WatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := seedContent(t)
	src, err := NewFileSource(dir, discardLogger())
	require.NoError(t, err)
	src.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	var changes atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- src.Watch(ctx, func() { changes.Add(1) })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	writeFile(t, dir, "services/netz.yaml", "title: Netzbau\norder: 0\n")

	require.Eventually(t, func() bool {
		sv, _ := src.Service(context.Background(), "netz")
		return sv != nil
	}, 3*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, changes.Load(), int32(1))

	cancel()
	require.NoError(t, <-done)
}
