package main

import (
	"os"

	common "github.com/flatstore/flatfs/cmd/flatfs-lens/internal"
	"github.com/flatstore/flatfs/pkg/flatfs"
	"github.com/spf13/cobra"
)

var (
	vRoot    string
	vShard   string
	vVerbose bool
)

var command = &cobra.Command{
	Use:           "flatfs-lens",
	Short:         "flatfs store lens",
	Long:          `flatfs-lens provides tools to browse and modify the contents of a flatfs store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

func init() {
	// use stdout as default output for cmd.Print()
	command.SetOut(os.Stdout)
	command.AddCommand(
		statsCMD,
		listCMD,
		getCMD,
		putCMD,
		delCMD,
	)
}

// openStore opens the store described by the persistent store flags.
func openStore(cmd *cobra.Command) *flatfs.Store {
	s, err := common.OpenStore(vRoot, vShard, vVerbose)
	common.ExitOnErr(cmd, common.Errf("open store: %w", err))

	return s
}

func main() {
	err := command.Execute()
	if err != nil {
		command.PrintErrln(err)
		os.Exit(1)
	}
}
