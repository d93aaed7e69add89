package table

import (
	"fmt"
	"os"

	"huffcode/pkg"

	"github.com/spf13/cobra"
)

var (
	file   string
	byCode bool
)

var TableCmd = &cobra.Command{
	Use:   "table [text]",
	Short: "View the frequency and code table for a text",
	Long:  "Show each symbol's frequency and Huffman code, sorted by descending frequency or by code length.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")

		text, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %s\n", err)
			os.Exit(1)
		}
		if text == "" {
			fmt.Println("Error: input is empty, no table to show")
			os.Exit(1)
		}

		result := pkg.Encode(text)
		entries := result.Entries()
		if byCode {
			entries = result.EntriesByCode()
		}

		for _, e := range entries {
			if quiet {
				fmt.Printf("%q: %s\n", e.Symbol, e.Code)
			} else {
				fmt.Printf("%q\tfreq %d\tcode %s\n", e.Symbol, e.Freq, e.Code)
			}
		}
	},
}

func readInput(args []string) (string, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("no text argument and no --file given")
}

func init() {
	TableCmd.Flags().StringVarP(&file, "file", "f", "", "Read input text from a file")
	TableCmd.Flags().BoolVarP(&byCode, "by-code", "c", false, "Sort by code length then code instead of frequency")
	TableCmd.Flags().BoolP("quiet", "Q", false, "Print only symbols and codes")
}
