package encode

import (
	"fmt"
	"os"

	"huffcode/pkg"

	"github.com/spf13/cobra"
)

var (
	file string
	out  string
)

var EncodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a Huffman bitstream",
	Long:  "Encode text (an argument or a file) into a Huffman bitstream and report size metrics.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %s\n", err)
			os.Exit(1)
		}
		if text == "" {
			fmt.Println("Error: input is empty, nothing to encode")
			os.Exit(1)
		}

		result := pkg.Encode(text)
		if result.Decoded != text {
			fmt.Println("Error: round-trip verification failed")
			os.Exit(1)
		}

		fmt.Printf("Encoded: %s\n", result.Encoded)
		fmt.Printf("Original size: %d bits\n", result.OriginalSize)
		fmt.Printf("Compressed size: %d bits\n", result.CompressedSize)
		fmt.Printf("Compression ratio: %.2f%%\n", result.CompressionRatio)

		if out != "" {
			packed, err := pkg.PackBits(result.Encoded)
			if err != nil {
				fmt.Printf("Error packing bitstream: %s\n", err)
				os.Exit(1)
			}
			if err := os.WriteFile(out, packed, 0644); err != nil {
				fmt.Printf("Error writing %s: %s\n", out, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %d bytes (%d bits) to %s\n", len(packed), result.CompressedSize, out)
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
	EncodeCmd.Flags().StringVarP(&file, "file", "f", "", "Read input text from a file")
	EncodeCmd.Flags().StringVarP(&out, "out", "o", "", "Write the packed bitstream to a file")
}
