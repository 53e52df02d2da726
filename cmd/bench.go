package cmd

import (
	"fmt"
	"time"

	"github.com/jzrake/patches"
	"github.com/jzrake/patches/ndarray"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Repeatedly fetch and commit a fixture database's patches",
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("n")
		blockSize, _ := cmd.Flags().GetInt("blockSize")
		iterations, _ := cmd.Flags().GetInt("iterations")
		profileKind, _ := cmd.Flags().GetString("profile")

		switch profileKind {
		case "cpu":
			defer profile.Start(profile.CPUProfile).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile).Stop()
		case "":
			// no profiling
		default:
			panic(fmt.Sprintf("unknown profile kind %q, want cpu or mem", profileKind))
		}

		store := buildFixture(n, blockSize, 1)
		store.SetBoundary(func(idx patches.Index, edge patches.Edge, depth int, center *ndarray.Array) (*ndarray.Array, error) {
			if edge == patches.EdgeIL || edge == patches.EdgeIR {
				return ndarray.New(depth, blockSize, 1), nil
			}
			return ndarray.New(blockSize, depth, 1), nil
		})

		start := time.Now()
		for it := 0; it < iterations; it++ {
			for _, p := range store.All(patches.Conserved) {
				guard, err := store.FetchGuard(p.Index, 1)
				if err != nil {
					panic(err)
				}
				interior := guard.Slice(1, blockSize+1, 1, blockSize+1)
				if err := store.Commit(p.Index, interior, 0.5); err != nil {
					panic(err)
				}
			}
		}

		region, err := store.Assemble(0, n, 0, n, 0, patches.Conserved)
		if err != nil {
			panic(err)
		}
		oi, oj, nk := region.Shape()
		fmt.Printf("%d iterations over %d patches in %s, assembled region %dx%dx%d\n", iterations, store.Size(), time.Since(start), oi, oj, nk)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntP("n", "n", 4, "level-0 grid is n x n patches")
	benchCmd.Flags().Int("blockSize", 16, "cells per patch edge")
	benchCmd.Flags().IntP("iterations", "i", 100, "number of fetch/commit sweeps")
	benchCmd.Flags().String("profile", "", "profile.Start kind: cpu, mem, or empty to disable")
}
