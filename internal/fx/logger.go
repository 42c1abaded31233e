package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// EventLogger routes fx's own events into zerolog. Successful steps are
// debug noise for an interactive tool; failures are errors.
type EventLogger struct {
	logger zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) fxevent.Logger {
	return &EventLogger{logger: logger.With().Str("component", "fx").Logger()}
}

func (l *EventLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Provided:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Str("constructor", e.ConstructorName).Msg("error encountered while applying options")
			return
		}
		l.logger.Debug().Str("constructor", e.ConstructorName).Strs("types", e.OutputTypeNames).Msg("provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Str("function", e.FunctionName).Msg("invoke failed")
			return
		}
		l.logger.Debug().Str("function", e.FunctionName).Msg("invoked")
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("OnStart hook failed")
			return
		}
		l.logger.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("OnStop hook failed")
			return
		}
		l.logger.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStop hook executed")
	case *fxevent.Stopping:
		l.logger.Debug().Str("signal", e.Signal.String()).Msg("received signal")
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Msg("start failed")
			return
		}
		l.logger.Debug().Msg("started")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Msg("stop failed")
		}
	case *fxevent.RollingBack:
		l.logger.Error().Err(e.StartErr).Msg("start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Msg("rollback failed")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error().Err(e.Err).Msg("custom logger initialization failed")
		}
	}
}
