package main

import (
	encode "huffcode/cmd/encode"
	table "huffcode/cmd/table"
	version "huffcode/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huffcode",
	Short: "Huffman text coder",
	Long:  "huffcode builds a prefix-free Huffman code for a text and encodes it into a bitstream.",
}

func main() {
	rootCmd.AddCommand(encode.EncodeCmd)
	rootCmd.AddCommand(table.TableCmd)
	rootCmd.AddCommand(version.VersionCmd)
	rootCmd.Execute()
}
