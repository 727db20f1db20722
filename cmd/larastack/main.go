// Package main provides the larastack command, which scaffolds a dockerized
// Laravel project: it clones the skeleton, generates the container files and
// starts the stack.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"

	"github.com/Cyclone1070/larastack/internal/config"
	"github.com/Cyclone1070/larastack/internal/provision"
	"github.com/Cyclone1070/larastack/internal/tool/executor"
	"github.com/Cyclone1070/larastack/internal/tool/fsutil"
	"github.com/Cyclone1070/larastack/internal/tool/gitutil"
	"github.com/Cyclone1070/larastack/internal/tool/shell"
	"github.com/Cyclone1070/larastack/internal/ui"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config *config.Config
	UI     ui.UserInterface
	Log    logrus.FieldLogger
	Engine *provision.Engine
}

// runFunc executes a provisioning request. Tests replace it to observe parsing.
type runFunc func(ctx context.Context, req provision.Request, opts options) error

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func createRealUI(cfg *config.Config) ui.UserInterface {
	terminal := isatty.IsTerminal(os.Stdout.Fd())
	renderer, err := ui.NewGlamourRenderer(80, terminal)
	var md ui.MarkdownRenderer
	if err == nil {
		md = renderer
	}
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewConsole(os.Stdin, os.Stdout, cfg, md, spinnerFactory)
}

func currentOwner(cfg *config.Config) string {
	if !cfg.Commands.FixOwnership {
		return ""
	}
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

func createDependencies(cfg *config.Config, log logrus.FieldLogger, opts options) Dependencies {
	userInterface := createRealUI(cfg)
	osFS := fsutil.NewOSFileSystem()
	launcher := shell.NewLauncher(executor.NewOSCommandExecutor(cfg, log), cfg, log)
	cloner := gitutil.NewCloner(log, nil)

	engine := provision.NewEngine(cfg, userInterface, osFS, launcher, cloner, log, provision.Options{
		Owner:     currentOwner(cfg),
		AssumeYes: opts.assumeYes,
	})
	return Dependencies{Config: cfg, UI: userInterface, Log: log, Engine: engine}
}

// runProvision loads the configuration, wires the real collaborators and runs
// the pipeline. Failures inside the pipeline were already reported to the
// operator, so only configuration errors are returned.
func runProvision(ctx context.Context, req provision.Request, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log := newLogger(os.Stderr, opts.verbose)
	deps := createDependencies(cfg, log, opts)

	if err := deps.Engine.Run(ctx, req); err != nil {
		if errors.Is(err, provision.ErrAborted) {
			log.Debug("run aborted by operator")
		} else {
			log.WithError(err).Debug("run failed")
		}
	}
	return nil
}

func newRootCmd(run runFunc) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "larastack [query]",
		Short: "Scaffold and start a dockerized Laravel project",
		Long: `larastack clones the Laravel skeleton into <path>/<appName>, installs its
dependencies, writes docker-compose.yml, Dockerfile, php, nginx and mysql settings
and .env, then starts the stack with docker compose.

Arguments can be given as a query string or as flags; flags win:

  larastack 'path=/srv/www&appName=shop&sourcePath=/opt/templates'
  larastack --path /srv/www --app-name shop`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(args, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), req, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.path, "path", "", "Parent directory of the project")
	flags.StringVar(&opts.appName, "app-name", "", "Project directory name")
	flags.StringVar(&opts.sourcePath, "source-path", "", "Directory holding templates/ (defaults to built-in templates)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (defaults to $"+config.EnvConfigPath+" or ~/.config/larastack/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	flags.BoolVarP(&opts.assumeYes, "yes", "y", false, "Answer yes to every conflict prompt")

	return cmd
}

// execute runs cmd and reports an argument or configuration error on stderr.
// Every outcome returns normally.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	execute(ctx, newRootCmd(runProvision), os.Stderr)
}
