package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/ecoquest/internal/cli"
	"github.com/rshade/ecoquest/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "ecoquest", root.Use)
	})

	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "generic error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: &cli.ExitError{Code: 2, Reason: "2 scenarios failed"}, want: 2},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("batch: %w", &cli.ExitError{Code: 3, Reason: "x"}),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExitCode(tt.err))
		})
	}
}
