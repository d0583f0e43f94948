package apiframe

import (
	"os"

	// Packages
	af "github.com/mutablelogic/go-apiframe"
	client "github.com/mutablelogic/go-client"
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is an option which can be passed to New
type Opt func(*opt) error

type opt struct {
	endpoint   string
	verbose    bool
	log        zerolog.Logger
	clientopts []client.ClientOpt
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opts ...Opt) (*opt, error) {
	o := &opt{
		endpoint: endPoint,
		log:      zerolog.New(os.Stdout).With().Timestamp().Logger(),
	}
	for _, fn := range opts {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithVerbose logs every decoded response before it is returned
func WithVerbose(verbose bool) Opt {
	return func(o *opt) error {
		o.verbose = verbose
		return nil
	}
}

// WithLogger replaces the default logger, which writes JSON lines to
// standard output
func WithLogger(log zerolog.Logger) Opt {
	return func(o *opt) error {
		o.log = log
		return nil
	}
}

// WithEndpoint replaces the service endpoint
func WithEndpoint(url string) Opt {
	return func(o *opt) error {
		if url == "" {
			return af.ErrBadParameter.With("missing endpoint")
		}
		o.endpoint = url
		return nil
	}
}

// WithClientOpts passes options to the underlying HTTP client, for example
// client.OptTrace or client.OptTimeout
func WithClientOpts(opts ...client.ClientOpt) Opt {
	return func(o *opt) error {
		o.clientopts = append(o.clientopts, opts...)
		return nil
	}
}
