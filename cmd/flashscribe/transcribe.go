package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"flashscribe/internal/asr"
	"flashscribe/internal/config"
	"flashscribe/internal/logging"
	"flashscribe/internal/media"
)

func runTranscribe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, opts.verbose)
	if err != nil {
		return err
	}

	appKey, accessToken := cfg.Credentials(opts.appID, opts.token)

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	if opts.timeout > 0 {
		timeout = time.Duration(opts.timeout) * time.Second
	}

	client := asr.NewClient(
		asr.WithEndpoint(cfg.API.Endpoint),
		asr.WithResourceID(cfg.API.ResourceID),
		asr.WithTimeout(timeout),
		asr.WithLogger(logger),
	)
	extractor := media.NewExtractor(
		media.WithBinary(cfg.Extraction.FFmpegBinary),
		media.WithFormat(cfg.Extraction.Format),
		media.WithTimeout(time.Duration(cfg.Extraction.TimeoutSeconds)*time.Second),
		media.WithLogger(logger),
	)
	transcriber := asr.NewTranscriber(
		asr.Credentials{AppKey: appKey, AccessToken: accessToken},
		asr.WithClient(client),
		asr.WithExtractor(extractor),
		asr.WithTranscriberLogger(logger),
		asr.KeepTemp(opts.keepTemp || cfg.Extraction.KeepTemp),
	)

	result, err := transcriber.Transcribe(cmd.Context(), asr.Input{URL: opts.url, File: opts.file})
	if err != nil {
		return err
	}

	if err := writeResult(cmd, opts, result); err != nil {
		return err
	}

	logger.Info("transcription complete",
		logging.Float64("duration_seconds", result.Duration()),
		logging.Int("text_length", len([]rune(result.Text()))),
	)
	return nil
}

func newLogger(cfg *config.Config, verbose bool) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, nil
}
