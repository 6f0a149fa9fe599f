package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool

	url      string
	file     string
	appID    string
	token    string
	textOnly bool
	srt      bool
	output   string
	timeout  int
	keepTemp bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "flashscribe",
		Short:         "Transcribe audio and video files with the Doubao ASR Flash service",
		Long: `Flashscribe submits an audio URL, a local audio file, or a local video file
to the Doubao ASR Flash recognition endpoint and prints the transcription.
Video input requires FFmpeg; the audio track is extracted to a temporary
file that is removed when the call finishes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A local .env may carry VOLCENGINE_* credentials; absence is fine.
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&opts.url, "url", "", "Publicly accessible audio URL")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "", "Local audio or video file path")
	rootCmd.Flags().StringVar(&opts.appID, "appid", "", "Application key (overrides config and environment)")
	rootCmd.Flags().StringVar(&opts.token, "token", "", "Access token (overrides config and environment)")
	rootCmd.Flags().BoolVar(&opts.textOnly, "text-only", false, "Print the transcribed text only")
	rootCmd.Flags().BoolVar(&opts.srt, "srt", false, "Print the transcription as SubRip subtitles")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the result to this file instead of stdout")
	rootCmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Request timeout in seconds (default from config)")
	rootCmd.Flags().BoolVar(&opts.keepTemp, "keep-temp", false, "Keep the temporary audio file extracted from video input")

	rootCmd.MarkFlagsMutuallyExclusive("url", "file")
	rootCmd.MarkFlagsOneRequired("url", "file")
	rootCmd.MarkFlagsMutuallyExclusive("text-only", "srt")

	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newDepsCommand(opts))

	return rootCmd
}
