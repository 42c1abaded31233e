package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lcu-scout/internal/config"
	"lcu-scout/internal/constants"

	"github.com/rs/zerolog"
)

var (
	ErrProcessNotFound = errors.New("league client process not found")
	ErrMissingArgument = errors.New("league client command line is missing an argument")
)

// Credentials is what the LCU needs from us: the port it listens on and
// the token for basic auth.
type Credentials struct {
	Port  string
	Token string
}

// processArgs lists the argv of every running process whose executable is
// named name. It is swapped out in tests.
var processArgs = runningProcessArgs

func Locate(cfg *config.Config, logger zerolog.Logger) (*Credentials, error) {
	if cfg.HasCredentials() {
		logger.Info().Str("port", cfg.Port).Msg("using lcu credentials from environment")
		return &Credentials{Port: cfg.Port, Token: cfg.Token}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DiscoveryTimeout)
	defer cancel()

	procs, err := processArgs(ctx, cfg.ProcessName)
	if err != nil {
		logger.Error().Err(err).Str("process", cfg.ProcessName).Msg("failed to list processes")
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	if len(procs) == 0 {
		logger.Error().Str("process", cfg.ProcessName).Msg("league client is not running")
		return nil, fmt.Errorf("%w: %s", ErrProcessNotFound, cfg.ProcessName)
	}

	creds, err := ParseArgs(procs[0])
	if err != nil {
		logger.Error().Err(err).Str("process", cfg.ProcessName).Msg("failed to read lcu credentials")
		return nil, err
	}

	logger.Info().Str("port", creds.Port).Msg("league client located")
	return creds, nil
}

// ParseArgs extracts the app port and the remoting auth token from a
// client's argv. A later occurrence of a flag wins.
func ParseArgs(args []string) (*Credentials, error) {
	creds := &Credentials{}
	for _, arg := range args {
		arg = strings.Trim(arg, `"`)
		switch {
		case strings.HasPrefix(arg, constants.PortFlag):
			creds.Port = strings.TrimPrefix(arg, constants.PortFlag)
		case strings.HasPrefix(arg, constants.AuthTokenFlag):
			creds.Token = strings.TrimPrefix(arg, constants.AuthTokenFlag)
		}
	}

	if creds.Port == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, constants.PortFlag)
	}
	if creds.Token == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, constants.AuthTokenFlag)
	}
	return creds, nil
}
