package config

const (
	defaultSourceDir       = "~/Photos/incoming"
	defaultTargetDir       = "~/Photos/library"
	defaultFixDir          = "~/Photos/scans"
	defaultRootDir         = "~/Photos/library"
	defaultLogDir          = "~/.local/share/photokeep/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultSizeThresholdMB = 0.5
)

func defaultImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".heic", ".tiff", ".cr3", ".arw", ".bmp"}
}

func defaultVideoExtensions() []string {
	return []string{".mp4", ".mov", ".avi", ".mkv", ".m4v", ".3gp", ".mpg", ".mpeg", ".vob"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			TargetDir: defaultTargetDir,
			FixDir:    defaultFixDir,
			RootDir:   defaultRootDir,
			LogDir:    defaultLogDir,
		},
		Extensions: Extensions{
			Image: defaultImageExtensions(),
			Video: defaultVideoExtensions(),
		},
		Settings: Settings{
			DryRun:          true,
			SizeThresholdMB: defaultSizeThresholdMB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
