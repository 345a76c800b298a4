package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/domify-dev/domify/internal/config"
	clierrors "github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/dom"
	_ "github.com/domify-dev/domify/pkg/html"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by subcommands once flags and config are read.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		clierrors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "domify",
		Short: "Build, check and render HTML documents",
		Long: `domify renders YAML page descriptions to HTML.

Attributes are checked against the HTML element catalogue while the tree is
built. Problems are logged as warnings and never stop rendering, unless
--strict is set.

Settings are read from flags, DOMIFY_* environment variables and
.domify.yaml, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.domify.yaml)")
	flags.StringP(config.KeyLogLevel, "l", "info", "log level (debug, info, warn, error)")
	flags.Bool(config.KeyPretty, false, "indent block elements")
	flags.String(config.KeyIndent, config.DefaultIndent, "indentation unit for --pretty")
	flags.Bool(config.KeyStrict, false, "fail when attribute warnings are reported")
	flags.Bool(config.KeyNoColor, false, "disable colored error output")

	rootCmd.AddCommand(
		renderCmd(a),
		treeCmd(a),
		kindsCmd(),
		serveCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// init loads configuration and sets up logging.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()

	a.v = v
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	dom.SetDefaultReporter(dom.LogReporter{Logger: a.logger})
	if cfg.NoColor {
		clierrors.DisableColors()
	}
	a.logger.Debug("configuration loaded", "file", v.ConfigFileUsed(), "pretty", cfg.Pretty, "strict", cfg.Strict)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// fileArg validates a single document argument.
func fileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s needs exactly one document file", cmd.Name())
	}
	return nil
}
