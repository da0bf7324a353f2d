// Package cmd implements the retroio CLI: inspect, convert, and play, one
// *cobra.Command per file, with a shared extension-sniffing mediaType
// helper.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "retroio",
	Short: "Reconstruct ZX Spectrum and Amstrad CPC tape audio from TZX/CDT/TAP images",
	Long: `retroio reads a TZX/CDT/TAP tape image and reconstructs the analog
waveform a tape-loading ROM expects: inspect its block list, convert it to a
WAV file, or play it back live through an audio device.`,
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// mediaType returns the explicit flag value if set, otherwise infers the
// container type from filename's extension (without the leading dot).
func mediaType(flag, filename string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	ext := filepath.Ext(filename)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
