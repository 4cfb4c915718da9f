package texttype

import (
	"context"
	"errors"
	"fmt"
	slog "log"
	"os"
	"os/signal"
	"time"

	goversion "github.com/caarlos0/go-version"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dlvhdr/texttype/internal/config"
	"github.com/dlvhdr/texttype/internal/term"
	"github.com/dlvhdr/texttype/internal/tui"
	"github.com/dlvhdr/texttype/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "texttype [text...] [flags]",
	Short: "Type, pause, delete and cycle through texts in the terminal",
	Args:  cobra.ArbitraryArgs,
}

func Execute(version goversion.Info) error {
	rootCmd.Version = version.String()
	return rootCmd.Execute()
}

func init() {
	var configPath string

	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"path to a YAML config file (default is $XDG_CONFIG_HOME/texttype/config.yml)",
	)

	rootCmd.SetVersionTemplate(`texttype {{printf "version %s\n" .Version}}`)

	rootCmd.Flags().Int(
		"typing-speed",
		0,
		"milliseconds per typed character",
	)

	rootCmd.Flags().Int(
		"deleting-speed",
		0,
		"milliseconds per deleted character",
	)

	rootCmd.Flags().Int(
		"pause",
		0,
		"milliseconds to wait after a text is fully typed",
	)

	rootCmd.Flags().Bool(
		"loop",
		true,
		"start over after the last text; when false the last text stays on screen",
	)

	rootCmd.Flags().Bool(
		"cursor",
		true,
		"show a blinking cursor after the text",
	)

	rootCmd.Flags().String(
		"cursor-char",
		"",
		"the cursor glyph",
	)

	rootCmd.Flags().StringP(
		"backend",
		"b",
		"",
		fmt.Sprintf("renderer to use: %s or %s", config.BackendBubbleTea, config.BackendTcell),
	)

	rootCmd.Flags().Bool(
		"exit",
		false,
		"exit once a non-looping animation shows its last text",
	)

	rootCmd.Flags().Bool(
		"debug",
		false,
		"passing this flag will allow writing debug output to debug.log",
	)

	rootCmd.Flags().BoolP(
		"help",
		"h",
		false,
		"help for texttype",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		_, debug := os.LookupEnv("DEBUG")
		if flagDebug, err := cmd.Flags().GetBool("debug"); err == nil && flagDebug {
			debug = true
		}
		setupLogging(debug)
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		c, err := config.Load(configPath)
		if err != nil {
			log.Error("failed loading config", "err", err)
			return err
		}

		if err := applyFlags(cmd, args, &c); err != nil {
			return err
		}

		if err := c.Validate(); err != nil {
			log.Error("invalid config", "err", err)
			return err
		}

		log.Debug("starting", "backend", c.Backend, "texts", len(c.Animation.Texts), "loop", c.Animation.Loop)

		switch c.Backend {
		case config.BackendTcell:
			return runTcell(c)
		default:
			return runBubbleTea(c)
		}
	}
}

func applyFlags(cmd *cobra.Command, args []string, c *config.Config) error {
	if len(args) > 0 {
		c.Animation.Texts = args
	}

	flags := cmd.Flags()
	var errs []error

	if flags.Changed("typing-speed") {
		ms, err := flags.GetInt("typing-speed")
		errs = append(errs, err)
		c.Animation.TypingSpeed = config.Millis(ms)
	}
	if flags.Changed("deleting-speed") {
		ms, err := flags.GetInt("deleting-speed")
		errs = append(errs, err)
		c.Animation.DeletingSpeed = config.Millis(ms)
	}
	if flags.Changed("pause") {
		ms, err := flags.GetInt("pause")
		errs = append(errs, err)
		c.Animation.PauseDuration = config.Millis(ms)
	}
	if flags.Changed("loop") {
		v, err := flags.GetBool("loop")
		errs = append(errs, err)
		c.Animation.Loop = v
	}
	if flags.Changed("cursor") {
		v, err := flags.GetBool("cursor")
		errs = append(errs, err)
		c.Animation.ShowCursor = v
	}
	if flags.Changed("cursor-char") {
		v, err := flags.GetString("cursor-char")
		errs = append(errs, err)
		c.Animation.CursorCharacter = v
	}
	if flags.Changed("backend") {
		v, err := flags.GetString("backend")
		errs = append(errs, err)
		c.Backend = v
	}
	if flags.Changed("exit") {
		v, err := flags.GetBool("exit")
		errs = append(errs, err)
		c.ExitWhenDone = v
	}

	return errors.Join(errs...)
}

func runBubbleTea(c config.Config) error {
	defer utils.TimeTrack(time.Now(), "program")

	m, err := tui.NewModel(c.Animation, tui.ModelOpts{ExitWhenDone: c.ExitWhenDone})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{}
	if !c.ExitWhenDone {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		log.Error("failed starting program", "err", err)
		return err
	}
	return nil
}

func runTcell(c config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return term.Run(ctx, screen, c.Animation, term.RunOpts{ExitWhenDone: c.ExitWhenDone})
}

func setupLogging(debug bool) {
	if !debug {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.FatalLevel)
		return
	}

	newConfigFile, fileErr := os.OpenFile("debug.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if fileErr != nil {
		_, _ = tea.LogToFile("debug.log", "debug")
		slog.Print("Failed setting up logging", fileErr)
		return
	}

	log.SetColorProfile(colorprofile.TrueColor)
	log.SetOutput(newConfigFile)
	log.SetTimeFormat("15:04:05.000")
	log.SetReportCaller(true)
	setDebugLogLevel()
	log.Debug("Logging to debug.log")
}

func setDebugLogLevel() {
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	}

	log.Debug("log level set", "level", log.GetLevel())
}
