package stream

// StreamOption configures Reader and Writer behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	hex      bool // Write integers in hex
	ignoreTZ bool // Use the time layout without a zone
}

// WithHexIntegers writes integers as 0x prefixed hex tokens.
func WithHexIntegers() StreamOption {
	return func(opts *streamOpts) {
		opts.hex = true
	}
}

// WithIgnoreTimeZone reads and writes times without a UTC offset.
func WithIgnoreTimeZone() StreamOption {
	return func(opts *streamOpts) {
		opts.ignoreTZ = true
	}
}

func buildOpts(opts []StreamOption) streamOpts {
	res := streamOpts{}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}
