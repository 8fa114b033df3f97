package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/browmap/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "browmap",
	Short: "Eyebrow mapping overlay for live camera previews",
	Long: `browmap draws an adjustable pair of eyebrow molds and a visagism
construction grid over a live camera image. Molds are moved, scaled,
rotated and reshaped with the mouse or the sidebar, and the composed
view can be exported as PNG, JPEG or WebP.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addPersistentFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
