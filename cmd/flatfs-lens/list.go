package main

import (
	"errors"

	common "github.com/flatstore/flatfs/cmd/flatfs-lens/internal"
	"github.com/spf13/cobra"
)

var vCount uint

var listCMD = &cobra.Command{
	Use:   "list",
	Short: "Key listing",
	Long:  `List the keys stored in a store, optionally limited to the first N found.`,
	Args:  cobra.NoArgs,
	Run:   listFunc,
}

func init() {
	common.AddStoreFlags(listCMD, &vRoot, &vShard, &vVerbose)
	listCMD.Flags().UintVar(&vCount, "count", 0, "Print at most this many keys (0 means all)")
}

func listFunc(cmd *cobra.Command, _ []string) {
	s := openStore(cmd)

	var (
		printed  uint
		errLimit = errors.New("limit reached")
	)

	err := s.IterateKeys(func(key string) error {
		cmd.Println(key)

		if printed++; vCount > 0 && printed == vCount {
			return errLimit
		}

		return nil
	})
	if err != nil && !errors.Is(err, errLimit) {
		common.ExitOnErr(cmd, common.Errf("iterate keys: %w", err))
	}
}
