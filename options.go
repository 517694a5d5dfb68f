package annotex

// exploreConfig holds the resolved configuration for an explore run.
type exploreConfig struct {
	outputDir  string
	scratchDir string
	imageExts  []string
	exif       bool
}

// Option configures an explore operation.
type Option func(*exploreConfig)

// WithOutputDir sets the parent directory the workspace is created under
// (default: current directory).
func WithOutputDir(dir string) Option {
	return func(c *exploreConfig) {
		c.outputDir = dir
	}
}

// WithScratchDir uses a fixed extraction directory instead of a unique
// temporary one. The directory is still deleted when the run completes.
func WithScratchDir(dir string) Option {
	return func(c *exploreConfig) {
		c.scratchDir = dir
	}
}

// WithImageExtensions extends the default image extension set
// (.png, .jpg, .jpeg).
func WithImageExtensions(exts ...string) Option {
	return func(c *exploreConfig) {
		c.imageExts = append(c.imageExts, exts...)
	}
}

// WithEXIF enables EXIF capture-date extraction for routed images in the
// workspace manifest.
func WithEXIF(enabled bool) Option {
	return func(c *exploreConfig) {
		c.exif = enabled
	}
}

func applyOpts(opts []Option) *exploreConfig {
	cfg := &exploreConfig{outputDir: "."}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
