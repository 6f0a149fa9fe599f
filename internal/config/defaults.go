package config

const (
	defaultEndpoint          = "https://openspeech.bytedance.com/api/v3/auc/bigmodel/recognize/flash"
	defaultResourceID        = "volc.bigasr.auc_turbo"
	defaultAPITimeoutSeconds = 300

	defaultFFmpegBinary             = "ffmpeg"
	defaultExtractionFormat         = "mp3"
	defaultExtractionTimeoutSeconds = 300

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			Endpoint:       defaultEndpoint,
			ResourceID:     defaultResourceID,
			TimeoutSeconds: defaultAPITimeoutSeconds,
		},
		Extraction: Extraction{
			FFmpegBinary:   defaultFFmpegBinary,
			Format:         defaultExtractionFormat,
			TimeoutSeconds: defaultExtractionTimeoutSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
