package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	cmd := newRootCmd()
	uses := make([]string, 0, len(cmd.Commands()))
	for _, sc := range cmd.Commands() {
		uses = append(uses, strings.Fields(sc.Use)[0])
	}
	assert.ElementsMatch(t, []string{"serve", "routes", "logs", "check"}, uses)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	for _, name := range []string{"listen", "assets", "verbose"} {
		assert.NotNil(t, serve.Flags().Lookup(name), name)
	}
}

func TestRoutesCommandPrintsTable(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(routes.Table())+1)
	assert.True(t, strings.HasPrefix(lines[1], "/ "))
	assert.Contains(t, out, "/getting-started")
	assert.Contains(t, out, "15%")
}

func TestLogsCommandFiltersCategory(t *testing.T) {
	dir := t.TempDir()
	fw, err := logging.NewFileWriter(logging.FileOptions{Dir: dir, Filename: logFilename})
	require.NoError(t, err)
	logger := logging.New("ConvertX", logging.INFO, fw)
	logger.Info("funnel", "funnel step completed", nil)
	logger.Warn("relay", "relay submission failed", map[string]any{"form": "qualified"})
	require.NoError(t, logger.Sync())
	require.NoError(t, fw.Close())

	out, err := run(t, "logs", "--dir", dir, "--category", "relay")
	require.NoError(t, err)
	assert.Contains(t, out, "relay submission failed")
	assert.NotContains(t, out, "funnel step completed")
}

func TestLogsCommandNeedsDirectory(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "logs")
	assert.Error(t, err)
}

func TestCheckCommandReportsFailures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt, ok := routes.Lookup(r.URL.Path)
		if !ok || rt.Path != routes.Home {
			http.NotFound(w, r)
			return
		}
		title := routes.DocumentTitle(rt.Title, "ConvertX")
		fmt.Fprintf(w, `<html><head><title>%s</title><meta name="description" content="d">
<link rel="canonical" href="https://x/"><meta property="og:title" content="%s">
<meta property="og:image" content="https://x/og.png"></head><body><h1>Hi</h1></body></html>`, title, title)
	}))
	defer ts.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"site":{"name":"ConvertX"}}`), 0o644))

	out, err := run(t, "--config", cfgPath, "check", ts.URL)
	require.Error(t, err)
	assert.Contains(t, out, "ok   /\n")
	assert.Contains(t, out, "FAIL /getting-started: status 404")
}
