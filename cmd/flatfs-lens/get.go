package main

import (
	common "github.com/flatstore/flatfs/cmd/flatfs-lens/internal"
	"github.com/spf13/cobra"
)

var getCMD = &cobra.Command{
	Use:   "get <key>",
	Short: "Value reading",
	Long:  `Write the value stored under a key to stdout.`,
	Args:  cobra.ExactArgs(1),
	Run:   getFunc,
}

func init() {
	common.AddStoreFlags(getCMD, &vRoot, &vShard, &vVerbose)
}

func getFunc(cmd *cobra.Command, args []string) {
	s := openStore(cmd)

	value, err := s.Get(args[0])
	common.ExitOnErr(cmd, common.Errf("get: %w", err))

	_, err = cmd.OutOrStdout().Write(value)
	common.ExitOnErr(cmd, common.Errf("write value: %w", err))
}
