package double

// settings collects the configuration shared by all double constructors.
type settings struct {
	logger  Logger
	ignored []int
}

// Option defines a functional option for configuring a double at construction time.
type Option func(*settings) error

// WithLogger sets the logger for a double.
//
// Doubles log at debug level only: implementation/value configuration, call
// dispatch, clearing, and failed assertions. Without a logger they are silent.
func WithLogger(logger Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			return ErrNilLogger
		}

		s.logger = logger

		return nil
	}
}

// WithIgnoredParams marks parameter positions (0-based, in declaration order)
// that are excluded from the call log and from AssertWith comparison.
// Dispatch is never affected: a configured implementation always receives the
// full parameter value.
//
// Only mocks support this option since fakes and stubs keep no call log.
func WithIgnoredParams(indices ...int) Option {
	return func(s *settings) error {
		for _, index := range indices {
			if index < 0 {
				return ErrInvalidIgnoreIndex
			}
		}

		s.ignored = append(s.ignored, indices...)

		return nil
	}
}

func applyOptions(options []Option) (settings, error) {
	s := settings{}

	for _, option := range options {
		if err := option(&s); err != nil {
			return settings{}, err
		}
	}

	return s, nil
}
