package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultClientRequestTimeout is used when the client is given no timeout.
const DefaultClientRequestTimeout = 10 * time.Second

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the account service
	// (e.g. "localhost:3333" or "https://accounts.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued bearer token used for protected calls.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables and the global flags in args. Flags win over the
// environment. The arguments left after the global flags (the sub-command
// and its own flags) are returned alongside the config.
//
// Flags:
//
//	-a server address
//	-timeout request timeout (e.g., "5s")
//	-token bearer token for protected commands
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("go-accounts-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	address := fs.String("a", "", "Account service address")
	timeout := fs.Duration("timeout", 0, "Request timeout (e.g., 5s)")
	token := fs.String("token", "", "Bearer token")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if *address != "" {
		cfg.Adapter.HTTPAddress = *address
	}
	if *timeout != 0 {
		cfg.Adapter.RequestTimeout = *timeout
	}
	if *token != "" {
		cfg.Adapter.Token = *token
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "localhost:" + DefaultListenPort
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, fs.Args(), cfg.validate()
}
