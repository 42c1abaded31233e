package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"lcu-scout/internal/constants"
	"lcu-scout/internal/domain"
	"lcu-scout/internal/middleware"
	"lcu-scout/internal/service"

	"github.com/rs/zerolog"
)

type Console struct {
	in     io.Reader
	out    io.Writer
	report middleware.ReportFunc
	logger zerolog.Logger
}

func NewConsole(svc *service.ReportService, logger zerolog.Logger) *Console {
	return newConsole(os.Stdin, os.Stdout, middleware.CycleID(logger)(svc.Run), logger)
}

func newConsole(in io.Reader, out io.Writer, report middleware.ReportFunc, logger zerolog.Logger) *Console {
	return &Console{in: in, out: out, report: report, logger: logger}
}

// Run reads commands until quit, end of input or ctx is done. It returns an
// error only when the input fails or the LCU became unreachable.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go c.read(ctx, lines, readErr)

	c.hint()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			quit, err := c.handle(ctx, line)
			if err != nil || quit {
				return err
			}
		}
	}
}

// read never returns while blocked on input; the process exit ends it.
func (c *Console) read(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- strings.TrimSpace(scanner.Text()):
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}
	if err := scanner.Err(); err != nil {
		readErr <- fmt.Errorf("failed to read input: %w", err)
		return
	}
	readErr <- nil
}

func (c *Console) handle(ctx context.Context, cmd string) (bool, error) {
	switch cmd {
	case "q":
		c.logger.Info().Msg("quit requested")
		return true, nil
	case "r":
		if err := c.runReport(ctx, domain.QueryRank); err != nil {
			return false, err
		}
	case "j":
		if err := c.runReport(ctx, domain.QueryPolarChaos); err != nil {
			return false, err
		}
	}
	c.hint()
	return false, nil
}

func (c *Console) runReport(ctx context.Context, q domain.QueryType) error {
	report, err := c.report(ctx, q)
	if err != nil {
		return err
	}
	if err := service.WriteReport(c.out, report); err != nil {
		c.logger.Warn().Err(err).Msg("failed to write report")
	}
	return nil
}

func (c *Console) hint() {
	fmt.Fprintln(c.out, constants.CommandHint)
}
