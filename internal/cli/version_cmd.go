package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/pkg/version"
)

// NewVersionCmd creates the version command with build details.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			info := version.Get()
			if format == config.FormatTable {
				cmd.Println(info.String())
				return nil
			}
			return renderJSON(cmd.OutOrStdout(), info)
		},
	}
}
