package discovery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lcu-scout/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientArgs = []string{
	`C:/Riot Games/League of Legends/LeagueClientUx.exe`,
	"--riotclient-auth-token=zzz",
	"--riotclient-app-port=50001",
	"--remoting-auth-token=Xy_Z-09abc",
	"--app-port=51234",
	"--app-pid=4242",
}

func stubProcessArgs(t *testing.T, procs [][]string, err error) {
	t.Helper()
	orig := processArgs
	processArgs = func(context.Context, string) ([][]string, error) { return procs, err }
	t.Cleanup(func() { processArgs = orig })
}

func TestParseArgs(t *testing.T) {
	creds, err := ParseArgs(clientArgs)
	require.NoError(t, err)
	assert.Equal(t, "51234", creds.Port)
	assert.Equal(t, "Xy_Z-09abc", creds.Token)
}

func TestParseArgsQuoted(t *testing.T) {
	creds, err := ParseArgs([]string{"LeagueClientUx.exe", `"--app-port=60000"`, `"--remoting-auth-token=tok"`})
	require.NoError(t, err)
	assert.Equal(t, &Credentials{Port: "60000", Token: "tok"}, creds)
}

func TestParseArgsIgnoresLookalikeFlags(t *testing.T) {
	_, err := ParseArgs([]string{"LeagueClientUx.exe", "--riotclient-app-port=1", "--remoting-auth-token=tok"})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestParseArgsMissing(t *testing.T) {
	tests := map[string][]string{
		"no port":     {"LeagueClientUx.exe", "--remoting-auth-token=tok"},
		"no token":    {"LeagueClientUx.exe", "--app-port=1234"},
		"empty value": {"LeagueClientUx.exe", "--app-port=", "--remoting-auth-token=tok"},
		"empty":       nil,
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(args)
			assert.ErrorIs(t, err, ErrMissingArgument)
		})
	}
}

func TestLocatePrefersEnvironment(t *testing.T) {
	stubProcessArgs(t, nil, errors.New("must not be called"))

	cfg := &config.Config{Port: "1111", Token: "env-token", ProcessName: "LeagueClientUx.exe"}
	creds, err := Locate(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, &Credentials{Port: "1111", Token: "env-token"}, creds)
}

func TestLocateFromProcess(t *testing.T) {
	stubProcessArgs(t, [][]string{clientArgs}, nil)

	creds, err := Locate(&config.Config{ProcessName: "LeagueClientUx.exe"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "51234", creds.Port)
	assert.Equal(t, "Xy_Z-09abc", creds.Token)
}

func TestLocateFailures(t *testing.T) {
	listErr := errors.New("access denied")

	tests := []struct {
		name    string
		procs   [][]string
		listErr error
		want    error
	}{
		{name: "not running", want: ErrProcessNotFound},
		{name: "missing flags", procs: [][]string{{"LeagueClientUx.exe", "--headless"}}, want: ErrMissingArgument},
		{name: "listing fails", listErr: listErr, want: listErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcessArgs(t, tt.procs, tt.listErr)

			_, err := Locate(&config.Config{ProcessName: "LeagueClientUx.exe"}, zerolog.Nop())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// The test binary itself is a running process, so the real lister must
// find it by name together with its argv.
func TestRunningProcessArgsFindsSelf(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	procs, err := runningProcessArgs(context.Background(), filepath.Base(exe))
	require.NoError(t, err)
	require.NotEmpty(t, procs)
	assert.NotEmpty(t, procs[0])
}

func TestRunningProcessArgsUnknownName(t *testing.T) {
	procs, err := runningProcessArgs(context.Background(), "no-such-process-lcu-scout")
	require.NoError(t, err)
	assert.Empty(t, procs)
}
