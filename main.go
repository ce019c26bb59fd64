// Icongen draws the traffic-light icon and writes the web app's icon set.
// Run from the repository root; with no flags it writes into ./public and
// ./src/app.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dungoboogies/la-traffic-scheduler/internal/app"
	"github.com/dungoboogies/la-traffic-scheduler/internal/export"
	"github.com/dungoboogies/la-traffic-scheduler/internal/render"
	"github.com/dungoboogies/la-traffic-scheduler/internal/resample"
)

const (
	envStdioLog   = "ICONGEN_STDIO_LOG"
	envComposite  = "ICONGEN_COMPOSITE"
	debugLogPath  = "./icongen-debug.log"
	exitFailure   = 1
	exitBadConfig = 2
)

// configError marks failures in flags or env that exit with exitBadConfig.
type configError struct{ err error }

func (e configError) Error() string { return "config: " + e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "icongen: %v\n", err)
		var cfgErr configError
		if errors.As(err, &cfgErr) || errors.Is(err, flag.ErrHelp) {
			os.Exit(exitBadConfig)
		}
		os.Exit(exitFailure)
	}
}

// run parses args, performs the export and returns once every deferred
// close has happened.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	defaults, err := export.DefaultConfigFromEnv()
	if err != nil {
		return configError{err}
	}

	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	publicDir := fs.String("public-dir", defaults.PublicDir, "static asset directory; also configurable via "+export.EnvPublicDir)
	appDir := fs.String("app-dir", defaults.AppDir, "app router directory that gets a favicon.ico copy; also configurable via "+export.EnvAppDir)
	filter := fs.String("filter", defaults.Filter.String(), "downscale filter: lanczos3 | catmullrom; also configurable via "+export.EnvFilter)
	mkdir := fs.Bool("mkdir", defaults.CreateDirs, "create missing output directories; also configurable via "+export.EnvMkdir)
	composite := fs.String("composite", os.Getenv(envComposite), "how shapes meet what is under them: src | over; also configurable via "+envComposite)
	debug := fs.Bool("debug", false, "enable debug logging to "+debugLogPath)
	stdioLog := fs.String("stdio-log", os.Getenv(envStdioLog), "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return configError{err}
	}

	if *stdioLog != "" {
		f, err := redirectStdIO(*stdioLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, "icongen: stdio log redirect:", err)
		} else {
			defer f.Close()
		}
	}

	cfg := export.Config{PublicDir: *publicDir, AppDir: *appDir, CreateDirs: *mkdir}
	if cfg.Filter, err = resample.ParseFilter(*filter); err != nil {
		return configError{err}
	}
	renderer := render.NewRenderer()
	if renderer.Op, err = render.ParseOp(*composite); err != nil {
		return configError{err}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "icongen: debug log open error:", err)
		} else {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		}
	}

	a := app.New(cfg, renderer, stdout)
	a.Logger = logger
	return a.Run(ctx)
}
