// Package cli wires the LLH to ECEF transform to a command line: argument
// handling, output formatting, diagnostics and tracing.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/llh2ecef/internal/logging"
)

// DefaultProgram is used in the usage line when App.Program is empty.
const DefaultProgram = "llh2ecef"

const tracerName = "github.com/signalsfoundry/llh2ecef/internal/cli"

// App holds the process-level dependencies of one invocation.
type App struct {
	Program string
	Stdout  io.Writer
	Logger  logging.Logger

	// Tracer receives one llh_to_ecef span per conversion. When nil the
	// global otel provider is used; cmd/llh2ecef never installs one, so
	// spans are only recorded by programs that embed App and configure a
	// TracerProvider themselves.
	Tracer trace.Tracer
}

func (a *App) program() string {
	if a.Program == "" {
		return DefaultProgram
	}
	return a.Program
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) log() logging.Logger {
	if a.Logger == nil {
		return logging.Noop()
	}
	return a.Logger.With(logging.String("program", a.program()))
}

func (a *App) tracer() trace.Tracer {
	if a.Tracer == nil {
		return otel.Tracer(tracerName)
	}
	return a.Tracer
}

// Run converts one position given as positional arguments and writes the
// result to Stdout. A wrong argument count prints the usage line and is not
// an error; an unparseable argument returns an *ArgError and writes nothing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) != len(argNames) {
		_, err := io.WriteString(a.stdout(), UsageLine(a.program()))
		return err
	}

	ctx, span := a.tracer().Start(ctx, "llh_to_ecef")
	defer span.End()

	pos, err := ParseArgs(args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid argument")
		return err
	}
	span.SetAttributes(
		attribute.Float64("llh.lat_deg", pos.LatDeg),
		attribute.Float64("llh.lon_deg", pos.LonDeg),
		attribute.Float64("llh.hae_km", pos.HeightKm),
	)

	if !pos.LatitudeInRange() {
		a.log().Warn(ctx, "latitude outside [-90, 90]", logging.Float("lat_deg", pos.LatDeg))
	}

	out := pos.ECEF()
	span.SetAttributes(
		attribute.Float64("ecef.x_km", out.X),
		attribute.Float64("ecef.y_km", out.Y),
		attribute.Float64("ecef.z_km", out.Z),
	)

	if _, err := io.WriteString(a.stdout(), FormatECEF(out)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write output")
		return err
	}
	return nil
}

// NewCommand builds the root command. Flag parsing is disabled so negative
// coordinates such as -33.8 reach Run as positional arguments.
func NewCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:                app.program() + " lat_deg lon_deg hae_km",
		Short:              "Convert a geodetic position to ECEF kilometres",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), args)
		},
	}
	cmd.SetOut(app.stdout())
	return cmd
}

// Execute runs the command with args and returns the process exit status.
func Execute(ctx context.Context, app *App, args []string) int {
	if err := dispatch(ctx, app, args); err != nil {
		var argErr *ArgError
		if errors.As(err, &argErr) {
			app.log().Error(ctx, "invalid argument",
				logging.String("arg", argErr.Name),
				logging.String("value", argErr.Value),
				logging.Err(argErr.Err),
			)
		} else {
			app.log().Error(ctx, "conversion failed", logging.Err(err))
		}
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, app *App, args []string) error {
	// cobra registers its hidden completion commands on every root, and
	// they would otherwise consume these words as a first argument.
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return app.Run(ctx, args)
	}
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := NewCommand(app)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
