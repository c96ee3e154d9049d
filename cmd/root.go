// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/intent"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/replay"
	"github.com/nibzard/tasklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams are the standard streams a command reads and writes.
type streams struct {
	in       io.Reader
	out, err io.Writer
}

func stdStreams() streams {
	return streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, stdStreams())
}

func run(ctx context.Context, args []string, std streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(std.err)
	fs.Usage = func() {
		printUsage(fs, std.err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "replay":
		return replayCommand(ctx, cfg, remainingArgs, std)
	case "doctor":
		return doctorCommand(cws, remainingArgs, std)
	case "config":
		return configCommand(cws, remainingArgs, std)
	case "logs":
		return logsCommand(ctx, cfg, remainingArgs, std)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(fs, std.out)
		return nil
	default:
		// An existing file is treated as a script to replay
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return replayCommand(ctx, cfg, append([]string{subcommand}, remainingArgs...), std)
		}
		fmt.Fprintf(std.err, "Unknown command: %s\n", subcommand)
		printUsage(fs, std.err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newLogger returns a logger writing to w with the configured options.
func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.New(w, logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
}

// tuiCommand launches the interactive view. The terminal belongs to the
// view, so logs go to a per-session file.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	rl, err := logging.NewRunLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer rl.Close()

	logger := newLogger(cfg, rl.Writer())
	logger.Info("session started", "run", rl.RunID, "filter", cfg.Filter, "dark", cfg.DarkMode, "blur", cfg.BlurPolicy)

	return ui.Run(ctx, cfg, logger)
}

// replayCommand runs an intent script and prints the final view.
func replayCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	fs := flag.NewFlagSet("tasklist replay", flag.ContinueOnError)
	fs.SetOutput(std.err)
	asJSON := fs.Bool("json", false, "Print the final view as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return fmt.Errorf("replay requires a script file (or - for stdin)")
	}
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	script, err := loadScript(remaining[0], std.in)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, std.err)
	session, err := replay.Run(ctx, script, intent.NewDispatcher(logger))
	if err != nil {
		return fmt.Errorf("replaying %s: %w", remaining[0], err)
	}

	if *asJSON {
		return replay.WriteJSON(std.out, session)
	}
	return replay.WriteText(std.out, session)
}

func loadScript(path string, stdin io.Reader) (*replay.Script, error) {
	if path == "-" {
		return replay.Read(stdin)
	}
	return replay.Load(path)
}

// doctorCommand checks the configuration, the log directory and, when a
// path is given, an intent script.
func doctorCommand(cws *config.ConfigWithSources, args []string, std streams) error {
	fs := flag.NewFlagSet("tasklist doctor", flag.ContinueOnError)
	fs.SetOutput(std.err)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	cfg := cws.Config
	w := std.out

	fmt.Fprintln(w, "Tasklist Doctor")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)

	allOK := true

	// Config was validated on load
	fmt.Fprintln(w, "Config:")
	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "  ✅ No config files (using defaults)")
	}
	for _, f := range cws.Files {
		fmt.Fprintf(w, "  ✅ %s\n", f)
	}
	fmt.Fprintf(w, "  ✅ Filter: %s\n", cfg.StatusFilter())
	fmt.Fprintf(w, "  ✅ Blur policy: %s\n", cfg.BlurPolicy)
	if *verbose {
		for _, f := range cws.Fields() {
			fmt.Fprintf(w, "     %s = %s (%s)\n", f.Key, f.Value, f.Source)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Log directory: %s\n", cfg.LogDir)
	if info, err := os.Stat(cfg.LogDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not found (will be created on first session)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	if len(remaining) == 1 {
		path := remaining[0]
		fmt.Fprintf(w, "Script: %s\n", path)
		script, err := loadScript(path, std.in)
		if err != nil {
			fmt.Fprintln(w, "  ❌ Validation failed:")
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(w, "     %s\n", strings.TrimSpace(line))
			}
			allOK = false
		} else {
			fmt.Fprintf(w, "  ✅ Valid (%d intents)\n", len(script.Intents))
		}
		fmt.Fprintln(w)
	}

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// configCommand prints the effective configuration with value sources.
func configCommand(cws *config.ConfigWithSources, args []string, std streams) error {
	fs := flag.NewFlagSet("tasklist config", flag.ContinueOnError)
	fs.SetOutput(std.err)
	example := fs.Bool("example", false, "Print an example config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		fmt.Fprint(std.out, config.ExampleConfig())
		return nil
	}

	for _, f := range cws.Files {
		fmt.Fprintf(std.out, "# %s\n", f)
	}
	for _, f := range cws.Fields() {
		fmt.Fprintf(std.out, "%-15s = %-20s # %s\n", f.Key, f.Value, f.Source)
	}
	return nil
}

// logsCommand shows the latest session log.
func logsCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	fs := flag.NewFlagSet("tasklist logs", flag.ContinueOnError)
	fs.SetOutput(std.err)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	list := fs.Bool("list", false, "List session logs, newest first")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *list {
		logs, err := logging.ListLogs(cfg.LogDir)
		if err != nil {
			return fmt.Errorf("listing logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Fprintln(std.out, "No log files found.")
			return nil
		}
		for _, l := range logs {
			fmt.Fprintf(std.out, "%s  %8d  %s\n", l.ModTime.Format("2006-01-02 15:04:05"), l.Size, l.Path)
		}
		return nil
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(std.out, "No log files found.")
		return nil
	}

	fmt.Fprintf(std.err, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(std.err, "(Ctrl+C to stop)")
	}

	return logging.TailLog(ctx, std.out, logPath, *n, *follow)
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tasklist - A terminal todo list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                  Interactive todo list (default command)")
	fmt.Fprintln(w, "  replay FILE|-        Run an intent script and print the final view")
	fmt.Fprintln(w, "  doctor [FILE]        Check config, log directory and an optional script")
	fmt.Fprintln(w, "  config               Show effective config and where each value came from")
	fmt.Fprintln(w, "  logs                 Show the latest session log")
	fmt.Fprintln(w, "  version              Show version information")
	fmt.Fprintln(w, "  help                 Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replay Options:")
	fmt.Fprintln(w, "  -json")
	fmt.Fprintln(w, "        Print the final view as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options:")
	fmt.Fprintln(w, "  -f, -follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  -list")
	fmt.Fprintln(w, "        List session logs, newest first")
}
