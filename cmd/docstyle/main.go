package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/state"
	"docstyle/style"
	"docstyle/styledef"
)

const appName = "docstyle"

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling - cli.Exit() looks
// non-transparent and unnecessary, subcommands return regular errors.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "style definition tool for word-processing documents",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:         "validate",
				Usage:        "Parses style definition file(s) and reports problems",
				OnUsageError: usageErrorHandler,
				Action:       validateDefinitions,
				ArgsUsage:    "FILE [FILE...]",
			},
			{
				Name:         "dump",
				Usage:        "Emits the persistable stylesheet built from definition file(s) and built-in styles",
				OnUsageError: usageErrorHandler,
				Action:       dumpStylesheet,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write stylesheet to `FILE` instead of STDOUT"},
				},
				ArgsUsage: "FILE [FILE...]",
			},
			{
				Name:         "diff",
				Usage:        "Compares two styles from definition file(s)",
				OnUsageError: usageErrorHandler,
				Action:       diffStyles,
				ArgsUsage:    "FILE STYLE_A STYLE_B",
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

// builtInCategories maps configured category names to loader categories.
var builtInCategories = map[string]style.BuiltInCategory{
	"headings":  style.BuiltInHeadings,
	"body":      style.BuiltInBody,
	"technical": style.BuiltInTechnical,
	"lists":     style.BuiltInLists,
	"tables":    style.BuiltInTables,
}

// prepareManager builds a style registry from the configuration and the
// definition files given on the command line.
func prepareManager(env *state.LocalEnv, files []string) (*style.Manager, error) {
	mgr := style.NewManager(env.Log)

	if len(env.Cfg.Styles.BuiltIn) == 0 {
		if err := mgr.LoadAllBuiltInStyles(); err != nil {
			return nil, err
		}
	} else {
		for _, name := range env.Cfg.Styles.BuiltIn {
			category, ok := builtInCategories[name]
			if !ok {
				return nil, fmt.Errorf("unknown built-in style category %q", name)
			}
			if err := mgr.LoadBuiltInStyles(category); err != nil {
				return nil, err
			}
		}
	}

	parser := styledef.NewParser(env.Log)
	for _, path := range append(append([]string{}, env.Cfg.Styles.Definitions...), files...) {
		styles, err := parser.LoadStylesFromFile(path)
		if err != nil {
			return nil, err
		}
		for _, s := range styles {
			if err := mgr.Register(s); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		sets, err := parser.LoadStyleSetsFromFile(path)
		if err != nil {
			return nil, err
		}
		for _, set := range sets {
			if err := mgr.RegisterStyleSet(set); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		env.Log.Info("Loaded style definitions", zap.String("file", path), zap.Int("styles", len(styles)), zap.Int("sets", len(sets)))
	}
	return mgr, nil
}

func validateDefinitions(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no definition files to validate")
	}

	mgr, err := prepareManager(env, cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	env.Log.Info("Definitions are valid", zap.Int("styles", mgr.Count()), zap.Int("sets", len(mgr.StyleSetNames())))
	return nil
}

func dumpStylesheet(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	mgr, err := prepareManager(env, cmd.Args().Slice())
	if err != nil {
		return err
	}

	sheet := mgr.Stylesheet()
	sheet.Indent(2)

	fname := cmd.String("output")
	if len(fname) == 0 {
		_, err = sheet.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	if _, err = sheet.WriteTo(f); err != nil {
		err = multierr.Append(err, f.Close())
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	env.Log.Info("Stylesheet written", zap.String("file", fname), zap.Int("styles", mgr.Count()))
	return f.Close()
}

func diffStyles(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 3 {
		return fmt.Errorf("diff requires a definition file and two style names")
	}

	mgr, err := prepareManager(env, []string{cmd.Args().Get(0)})
	if err != nil {
		return err
	}

	a, ok := mgr.Get(cmd.Args().Get(1))
	if !ok {
		return fmt.Errorf("diff: %q: %w", cmd.Args().Get(1), style.ErrStyleNotFound)
	}
	b, ok := mgr.Get(cmd.Args().Get(2))
	if !ok {
		return fmt.Errorf("diff: %q: %w", cmd.Args().Get(2), style.ErrStyleNotFound)
	}

	fmt.Fprint(os.Stdout, style.CompareStyles(a, b))
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := config.Dump(env.Cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write configuration to '%s': %w", fname, err)
	}
	env.Log.Info("Wrote configuration", zap.String("file", fname))
	return nil
}
