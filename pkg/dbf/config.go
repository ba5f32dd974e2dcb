package dbf

// Options represents configuration options for an Encoder.
type Options struct {
	debug      bool  // Enable debug logging.
	updateDate Value // Header last-update date. Defaults to the current date.
	version    byte  // Header version byte.
	langDriver byte  // Header language driver byte.
}

// Config is a function on the Options for an Encoder.
// These are used to configure particular options.
type Config func(*Options) error

func DefaultOptions() *Options {
	return &Options{
		version:    VersionDBase5,
		langDriver: LangDriverANSI,
	}
}

func WithDebug() Config {
	return func(o *Options) error {
		o.debug = true
		return nil
	}
}

// WithUpdateDate fixes the header last-update date instead of stamping
// the current date. The value goes through the same normalization as
// date fields, so it may be an Epoch, a Calendar or a YYYYMMDD string.
func WithUpdateDate(v Value) Config {
	return func(o *Options) error {
		if _, err := ToDate(v); err != nil {
			return err
		}
		o.updateDate = v
		return nil
	}
}

// WithVersion overrides the header version byte for consumers pinned
// to another dialect marker.
func WithVersion(version byte) Config {
	return func(o *Options) error {
		o.version = version
		return nil
	}
}

// WithLanguageDriver overrides the header language driver byte.
func WithLanguageDriver(langDriver byte) Config {
	return func(o *Options) error {
		o.langDriver = langDriver
		return nil
	}
}
