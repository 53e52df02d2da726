package cmd

import (
	"fmt"

	"github.com/jzrake/patches/serialize"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Build a fixture database and write it under a directory",
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("n")
		blockSize, _ := cmd.Flags().GetInt("blockSize")
		levels, _ := cmd.Flags().GetInt("levels")
		out, _ := cmd.Flags().GetString("out")

		store := buildFixture(n, blockSize, levels)
		fs, err := serialize.NewFS(out)
		if err != nil {
			panic(err)
		}
		if err := serialize.Dump(store, fs); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %d patches to %s\n", store.Size(), out)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().IntP("n", "n", 2, "level-0 grid is n x n patches")
	dumpCmd.Flags().Int("blockSize", 8, "cells per patch edge")
	dumpCmd.Flags().IntP("levels", "l", 2, "quadtree depth: patch (0,0) is refined levels-1 times")
	dumpCmd.Flags().StringP("out", "o", "./patchdb-fixture", "output directory")
}
