package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"retroio/audio"
	"retroio/player"
	"retroio/tui"
	"retroio/waveform"
)

var (
	playMediaType      string
	playPlatform       string
	playSampleRate     int
	playBufferLengthMs int
	playDurationPct    float64
)

var playCmd = &cobra.Command{
	Use:                   "play FILE",
	Short:                 "Play a TZX/CDT/TAP tape image through an audio device",
	Long:                  `Reconstructs the tape's audio waveform and streams it live through the default audio output, with an interactive terminal UI.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		t, err := loadTape(filename, playMediaType, playPlatform)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		cfg := waveform.Config{
			SampleRate:          playSampleRate,
			Platform:            t.Platform,
			PlaybackDurationPct: playDurationPct,
		}

		framesPerBuffer := cfg.SampleRate * playBufferLengthMs / 1000
		sink, err := audio.Open(cfg.SampleRate, framesPerBuffer)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer sink.Close()

		p := player.New(t.Blocks, sink, cfg)
		model := tui.New(p, filename)

		program := tea.NewProgram(model)
		if _, err := program.Run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	playCmd.Flags().StringVarP(&playMediaType, "media", "m", "", `Media type, default: file extension`)
	playCmd.Flags().StringVar(&playPlatform, "platform", "", `Target machine: amstrad-cpc, zx-spectrum (default: inferred from extension)`)
	playCmd.Flags().IntVar(&playSampleRate, "sample-rate", 44100, `Output sample rate in Hz`)
	playCmd.Flags().IntVar(&playBufferLengthMs, "buffer-length-ms", 100, `Audio output buffer size in milliseconds`)
	playCmd.Flags().Float64Var(&playDurationPct, "playback-duration-percent", 100, `Scale every pulse's duration by this percentage`)
	rootCmd.AddCommand(playCmd)
}
