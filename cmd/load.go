package cmd

import (
	"fmt"

	"github.com/jzrake/patches/serialize"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a database dumped by dump and report its size",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		fs, err := serialize.NewFS(dir)
		if err != nil {
			panic(err)
		}
		store, err := serialize.Load(fs)
		if err != nil {
			panic(err)
		}
		ni, nj := store.BlockSize()
		fmt.Printf("loaded %d patches from %s (block size %dx%d)\n", store.Size(), dir, ni, nj)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringP("dir", "d", "./patchdb-fixture", "directory previously written by dump")
}
