package storefront

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/storefront/client"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
	"gopkg.in/yaml.v3"
)

// ClientOptions defines options for configuring a storefront client.
type ClientOptions struct {
	URL               string        `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" env:"STOREFRONT_URL" description:"storefront API base URL"`
	SessionURL        string        `yaml:"session,omitempty" json:"session,omitempty" short:"s" long:"session" env:"STOREFRONT_SESSION" description:"session file location, in memory when empty"`
	Timeout           time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" long:"timeout" description:"request timeout, e.g. 30s"`
	LogLevel          string        `yaml:"logLevel,omitempty" json:"logLevel,omitempty" short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"disabled"`
	DisableCoalescing bool          `yaml:"disableCoalescing,omitempty" json:"disableCoalescing,omitempty" long:"no-coalesce" description:"refresh independently for every rejected request"`

	// Store overrides the session store built from SessionURL.
	Store store.Store `yaml:"-" json:"-"`
	// Transport overrides the network transport.
	Transport http.RoundTripper `yaml:"-" json:"-"`
	// OnSessionExpired is called after a terminal authorization failure cleared the session.
	OnSessionExpired transport.SessionExpiredHandler `yaml:"-" json:"-"`
	// Logger overrides the logger built from LogLevel.
	Logger *zerolog.Logger `yaml:"-" json:"-"`
}

func (c *ClientOptions) Init() {
	if c.URL == "" {
		c.URL = client.DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelWarnValue
	}
}

// LoadOptions reads ClientOptions from a YAML document at URL (a local path or any afs URL).
func LoadOptions(ctx context.Context, URL string) (*ClientOptions, error) {
	options := &ClientOptions{}
	if err := options.Load(ctx, URL); err != nil {
		return nil, err
	}
	return options, nil
}

// Load overlays the YAML document at URL onto c.
func (c *ClientOptions) Load(ctx context.Context, URL string) error {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, url.Normalize(URL, file.Scheme))
	if err != nil {
		return fmt.Errorf("failed to load client options %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid client options %v: %w", URL, err)
	}
	return nil
}

// NewClient creates a storefront client with session store, refresh and logging configured via ClientOptions.
func NewClient(options *ClientOptions) (*client.Client, error) {
	options.Init()
	sessionStore, err := options.sessionStore()
	if err != nil {
		return nil, err
	}
	logger, err := options.logger()
	if err != nil {
		return nil, err
	}
	opts := []client.Option{
		client.WithStore(sessionStore),
		client.WithLogger(logger),
		client.WithTimeout(options.Timeout),
		client.WithRefreshCoalescing(!options.DisableCoalescing),
	}
	if options.Transport != nil {
		opts = append(opts, client.WithTransport(options.Transport))
	}
	if options.OnSessionExpired != nil {
		opts = append(opts, client.WithSessionExpiredHandler(options.OnSessionExpired))
	}
	return client.New(options.URL, opts...)
}

func (c *ClientOptions) sessionStore() (store.Store, error) {
	if c.Store != nil {
		return c.Store, nil
	}
	if c.SessionURL == "" {
		return store.NewMemoryStore(), nil
	}
	ret, err := store.NewFileStore(c.SessionURL)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *ClientOptions) logger() (zerolog.Logger, error) {
	if c.Logger != nil {
		return *c.Logger, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Str("component", "storefront").
		Logger(), nil
}
