package cli

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLogAfterRun(t *testing.T) {
	errRun := errors.New("run failed")

	root := &cobra.Command{Use: "root"}
	ok := &cobra.Command{Use: "ok", RunE: func(*cobra.Command, []string) error { return nil }}
	failing := &cobra.Command{Use: "failing", RunE: func(*cobra.Command, []string) error { return errRun }}
	group := &cobra.Command{Use: "group"}
	group.AddCommand(failing)
	root.AddCommand(ok, group)

	var closed int
	closeLogAfterRun(root, func() error { closed++; return nil })

	require.NoError(t, ok.RunE(ok, nil))
	assert.Equal(t, 1, closed)

	require.ErrorIs(t, failing.RunE(failing, nil), errRun)
	assert.Equal(t, 2, closed, "nested commands close the log even when they fail")

	assert.Nil(t, group.RunE, "commands without RunE stay non-runnable")
}

func TestCloseLogAfterRun_CloseError(t *testing.T) {
	errClose := errors.New("close failed")
	errRun := errors.New("run failed")

	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	closeLogAfterRun(cmd, func() error { return errClose })
	require.ErrorIs(t, cmd.RunE(cmd, nil), errClose)

	cmd = &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return errRun }}
	closeLogAfterRun(cmd, func() error { return errClose })
	require.ErrorIs(t, cmd.RunE(cmd, nil), errRun, "the command's own error wins")
}
