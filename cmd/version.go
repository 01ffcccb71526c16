package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frontlint/frontlint/pkg/buildinfo"
)

var versionExtended bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("frontlint %s\n", buildinfo.BinaryVersion)
		if versionExtended {
			if mod := buildinfo.ModuleVersion(); mod != "" {
				cmd.Printf("module: %s\n", mod)
			}
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionExtended, "extended", false, "Show extended build information")
}
