package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"retroio/convert"
	"retroio/waveform"
	"retroio/wavfile"
)

var (
	convertMediaType   string
	convertPlatform    string
	convertSampleRate  int
	convertDurationPct float64
	convertOutput      string
)

var convertCmd = &cobra.Command{
	Use:                   "convert FILE",
	Short:                 "Convert a TZX/CDT/TAP tape image to a WAV file",
	Long:                  `Reconstructs the tape's audio waveform and writes it to a mono 16-bit PCM WAV file.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		t, err := loadTape(filename, convertMediaType, convertPlatform)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		out := convertOutput
		if out == "" {
			out = filename + ".wav"
		}

		cfg := waveform.Config{
			SampleRate:          convertSampleRate,
			Platform:            t.Platform,
			PlaybackDurationPct: convertDurationPct,
		}

		writer, err := wavfile.Create(out, cfg.SampleRate)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		log.Info("converting", "file", filename, "platform", cfg.Platform, "output", out)
		if err := convert.Run(t.Blocks, cfg, writer); err != nil {
			fmt.Println(err)
			_ = writer.Close()
			os.Exit(1)
		}

		if err := writer.Close(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertMediaType, "media", "m", "", `Media type, default: file extension`)
	convertCmd.Flags().StringVar(&convertPlatform, "platform", "", `Target machine: amstrad-cpc, zx-spectrum (default: inferred from extension)`)
	convertCmd.Flags().IntVar(&convertSampleRate, "sample-rate", 44100, `Output sample rate in Hz`)
	convertCmd.Flags().Float64Var(&convertDurationPct, "playback-duration-percent", 100, `Scale every pulse's duration by this percentage`)
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", `Output WAV path (default: <file>.wav)`)
	rootCmd.AddCommand(convertCmd)
}
