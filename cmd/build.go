package cmd

import (
	"fmt"

	"github.com/jzrake/patches/codec"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Synthesize a small fixture database and print its header",
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("n")
		blockSize, _ := cmd.Flags().GetInt("blockSize")
		levels, _ := cmd.Flags().GetInt("levels")

		store := buildFixture(n, blockSize, levels)
		fmt.Printf("built %d patches, block size %dx%d\n", store.Size(), blockSize, blockSize)

		data, err := codec.MarshalHeader(store.Header())
		if err != nil {
			panic(err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().IntP("n", "n", 2, "level-0 grid is n x n patches")
	buildCmd.Flags().Int("blockSize", 8, "cells per patch edge")
	buildCmd.Flags().IntP("levels", "l", 2, "quadtree depth: patch (0,0) is refined levels-1 times")
}
