package xmldoc

// Option is a function that configures a Converter instance.
type Option func(*Converter)

// WithLineEnding sets the token substituted for every structural newline in
// converted output. An empty token falls back to "\n".
func WithLineEnding(lineEnding string) Option {
	return func(c *Converter) {
		if lineEnding == "" {
			c.lineEnding = defaultLineEnding

			return
		}

		c.lineEnding = lineEnding
	}
}

// WithAnnotationsDir sets the folder searched for per-assembly
// {Assembly}.ExternalAnnotations.xml files. When unset, external
// annotations are not consulted.
func WithAnnotationsDir(dir string) Option {
	return func(c *Converter) {
		c.annotationsDir = dir
	}
}

// WithAnnotationCache attaches a cache of parsed annotation files. Without
// one, every resolution re-reads the annotations file from disk.
func WithAnnotationCache(cache *AnnotationCache) Option {
	return func(c *Converter) {
		c.cache = cache
	}
}

// SetOptions applies the given options to the [Converter] instance.
//
// Note that applying options may override previously set values.
func (c *Converter) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
