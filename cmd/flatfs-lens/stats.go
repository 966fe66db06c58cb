package main

import (
	common "github.com/flatstore/flatfs/cmd/flatfs-lens/internal"
	"github.com/spf13/cobra"
)

var statsCMD = &cobra.Command{
	Use:   "stats",
	Short: "Store statistics",
	Long:  `Print the on-disk footprint of a store in bytes.`,
	Args:  cobra.NoArgs,
	Run:   statsFunc,
}

func init() {
	common.AddStoreFlags(statsCMD, &vRoot, &vShard, &vVerbose)
}

func statsFunc(cmd *cobra.Command, _ []string) {
	s := openStore(cmd)

	usage, err := s.DiskUsage()
	common.ExitOnErr(cmd, common.Errf("disk usage: %w", err))

	cmd.Printf("Size on disk: %d bytes\n", usage)
}
