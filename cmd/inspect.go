package cmd

import (
	"fmt"

	"github.com/jzrake/patches/serialize"
	"github.com/spf13/cobra"
)

// inspectCmd reports the per-field patch and cell counts of a dumped
// database.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print per-field patch counts for a dumped database",
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
		fmt.Printf("block size: %dx%d\n", ni, nj)
		for _, field := range store.Header().Fields() {
			fmt.Printf("%-16s %6d patches, %8d cells\n", field, store.Count(field), store.NumCells(field))
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("dir", "d", "./patchdb-fixture", "directory previously written by dump")
}
