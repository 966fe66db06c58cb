package common

import (
	"fmt"
	"os"

	"github.com/flatstore/flatfs/pkg/flatfs"
	"github.com/flatstore/flatfs/pkg/flatfs/shard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Errf returns formatted error in errFmt format if err is not nil.
func Errf(errFmt string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf(errFmt, err)
}

// ExitOnErr prints error via cmd and exits with code 1. Does nothing if err
// is nil.
func ExitOnErr(cmd *cobra.Command, err error) {
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
}

// AddStoreFlags registers the flags every subcommand needs to reach a store
// root.
func AddStoreFlags(cmd *cobra.Command, root, descriptor *string, verbose *bool) {
	cmd.Flags().StringVar(root, "root", "", "Path to the store root directory")
	_ = cmd.MarkFlagRequired("root")

	cmd.Flags().StringVar(descriptor, "shard", shard.Default().String(), "Shard descriptor of the store")
	cmd.Flags().BoolVarP(verbose, "verbose", "v", false, "Log store operations")
}

// OpenStore opens the store pointed to by the flag values registered with
// AddStoreFlags.
func OpenStore(root, descriptor string, verbose bool) (*flatfs.Store, error) {
	sh, err := shard.Parse(descriptor)
	if err != nil {
		return nil, fmt.Errorf("parse shard flag: %w", err)
	}

	opts := []flatfs.Option{flatfs.WithShard(sh)}

	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}

		opts = append(opts, flatfs.WithLogger(log))
	}

	return flatfs.New(root, opts...)
}
