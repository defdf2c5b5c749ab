package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want Args
	}{
		{
			name: "empty is input mode with defaults",
			argv: nil,
			want: Args{Selection: "clipboard"},
		},
		{
			name: "output with targets",
			argv: []string{"-o", "-t", "TARGETS"},
			want: Args{Selection: "clipboard", Output: true, MIME: "TARGETS"},
		},
		{
			name: "flags are order independent",
			argv: []string{"-t", "image/png", "-o"},
			want: Args{Selection: "clipboard", Output: true, MIME: "image/png"},
		},
		{
			name: "input with file path",
			argv: []string{"-t", "image/png", "-i", "shot.png"},
			want: Args{Selection: "clipboard", MIME: "image/png", InputFile: "shot.png"},
		},
		{
			name: "bare -i reads stdin",
			argv: []string{"-i", "-t", "text/plain"},
			want: Args{Selection: "clipboard", MIME: "text/plain"},
		},
		{
			name: "selection is accepted and recorded",
			argv: []string{"-selection", "primary", "-o"},
			want: Args{Selection: "primary", Output: true},
		},
		{
			name: "unrecognized flags are ignored",
			argv: []string{"-quiet", "-o", "-display", ":0", "-t", "TARGETS"},
			want: Args{Selection: "clipboard", Output: true, MIME: "TARGETS"},
		},
		{
			name: "trailing -t without value is ignored",
			argv: []string{"-o", "-t"},
			want: Args{Selection: "clipboard", Output: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseArgs(tt.argv))
		})
	}
}
