package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"retroio/inspect"
	"retroio/player"
	"retroio/waveform"
)

var (
	inspectMediaType string
	inspectExtended  bool
	inspectWaveforms bool
	inspectBasic     bool
)

var inspectCmd = &cobra.Command{
	Use:                   "inspect FILE",
	Short:                 "Display the block list of a TZX/CDT/TAP tape image",
	Long:                  `Parses a tape image and prints a one-line summary of every block it contains.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		t, err := loadTape(filename, inspectMediaType, "")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		inspect.Run(os.Stdout, t.Header, t.Archive, t.Blocks, inspectExtended)

		if inspectBasic {
			fmt.Println()
			inspect.ListBasicPrograms(os.Stdout, t.Blocks)
		}

		if inspectWaveforms {
			cfg := waveform.DefaultConfig()
			cfg.Platform = t.Platform
			p := player.New(t.Blocks, player.NullSink{}, cfg)
			fmt.Println()
			fmt.Printf("WAVEFORMS: %d segments, total duration %s\n", p.WaveformCount(), p.TotalDuration())
		}
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectMediaType, "media", "m", "", `Media type, default: file extension`)
	inspectCmd.Flags().BoolVar(&inspectExtended, "extended", false, `Show extended per-block detail (archive info, hardware entries, payload previews)`)
	inspectCmd.Flags().BoolVar(&inspectWaveforms, "waveforms", false, `Show the flattened waveform segment count and total duration`)
	inspectCmd.Flags().BoolVar(&inspectBasic, "basic", false, `List ROM-header-tagged BASIC program blocks`)
	rootCmd.AddCommand(inspectCmd)
}
