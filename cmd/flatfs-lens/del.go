package main

import (
	common "github.com/flatstore/flatfs/cmd/flatfs-lens/internal"
	"github.com/spf13/cobra"
)

var delCMD = &cobra.Command{
	Use:   "del <key>",
	Short: "Value removal",
	Long:  `Delete the value stored under a key. Fails if the key is not present.`,
	Args:  cobra.ExactArgs(1),
	Run:   delFunc,
}

func init() {
	common.AddStoreFlags(delCMD, &vRoot, &vShard, &vVerbose)
}

func delFunc(cmd *cobra.Command, args []string) {
	s := openStore(cmd)

	common.ExitOnErr(cmd, common.Errf("del: %w", s.Delete(args[0])))
}
