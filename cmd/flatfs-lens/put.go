package main

import (
	"io"

	common "github.com/flatstore/flatfs/cmd/flatfs-lens/internal"
	"github.com/spf13/cobra"
)

var putCMD = &cobra.Command{
	Use:   "put <key>",
	Short: "Value writing",
	Long:  `Store the bytes read from stdin under a key.`,
	Args:  cobra.ExactArgs(1),
	Run:   putFunc,
}

func init() {
	common.AddStoreFlags(putCMD, &vRoot, &vShard, &vVerbose)
}

func putFunc(cmd *cobra.Command, args []string) {
	s := openStore(cmd)

	value, err := io.ReadAll(cmd.InOrStdin())
	common.ExitOnErr(cmd, common.Errf("read value from stdin: %w", err))

	common.ExitOnErr(cmd, common.Errf("put: %w", s.Put(args[0], value)))
}
