package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"vfmatch"}, args...))

	return out.String(), err
}

func TestMatchAction(t *testing.T) {
	dir := t.TempDir()
	target := writeGraph(t, dir, "target.graph", "a [red] -> b [blue] -> c [blue] -> a; c -> d [blue]")
	pattern := writeGraph(t, dir, "pattern.graph", "x [red] -> y")
	dot := filepath.Join(dir, "match.dot")

	tests := []struct {
		name    string
		args    []string
		want    []string
		matches int
		wantErr string
	}{
		{
			name:    "first subgraph match",
			args:    []string{"--target", target, "--pattern", pattern, "--mode", "subgraph"},
			want:    []string{"match 1", "TARGET", "PATTERN"},
			matches: 1,
		},
		{
			name:    "all subgraph matches",
			args:    []string{"--target", target, "--pattern", pattern, "--mode", "sub", "--all"},
			matches: 4,
		},
		{
			name:    "colors respected",
			args:    []string{"--target", target, "--pattern", pattern, "--mode", "sub", "--all", "--context"},
			want:    []string{"│ a "},
			matches: 1,
		},
		{
			name:    "limit",
			args:    []string{"--target", target, "--pattern", pattern, "--mode", "sub", "--all", "--limit", "2"},
			matches: 2,
		},
		{
			name: "isomorphism fails",
			args: []string{"--target", target, "--pattern", pattern},
			want: []string{"no match"},
		},
		{
			name:    "metrics and dot",
			args:    []string{"--target", target, "--pattern", pattern, "--mode", "sub", "--metrics", "--dot", dot},
			want:    []string{"vfmatch_searches_total", "mode=subgraph", "vfmatch_candidates_per_search"},
			matches: 1,
		},
		{
			name:    "bad mode",
			args:    []string{"--target", target, "--pattern", pattern, "--mode", "fuzzy"},
			wantErr: "unknown match mode",
		},
		{
			name:    "negative limit",
			args:    []string{"--target", target, "--pattern", pattern, "--limit", "-1"},
			wantErr: "--limit must not be negative",
		},
		{
			name:    "missing file",
			args:    []string{"--target", filepath.Join(dir, "nope"), "--pattern", pattern},
			wantErr: "open graph",
		},
		{
			name:    "missing flag",
			args:    []string{"--target", target},
			wantErr: "Required flag \"pattern\" not set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.Equal(t, tt.matches, strings.Count(out, "match "), out)
		})
	}

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph")
}

func TestMatchAction_BadGraph(t *testing.T) {
	dir := t.TempDir()
	target := writeGraph(t, dir, "target.graph", "a -> ")
	pattern := writeGraph(t, dir, "pattern.graph", "x")

	_, err := run(t, "--target", target, "--pattern", pattern)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target.graph")
}
