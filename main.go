package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/frame"
	"github.com/iburimskiy/fps-viewer/internal/game"
	"github.com/iburimskiy/fps-viewer/internal/imageio"
	"github.com/iburimskiy/fps-viewer/internal/rate"
	"github.com/iburimskiy/fps-viewer/internal/setup"
)

var (
	flagRate      int
	flagImage     string
	flagAdapter   int
	flagIcon      string
	flagFont      string
	flagFontSize  float64
	flagLogLevel  string
	flagWatch     bool
	flagSetup     bool
	flagNoDialogs bool
	flagConfig    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := setup.Defaults()
	rootCmd := &cobra.Command{
		Use:          config.AppName + " [image]",
		Short:        "Show an image and redraw it at an adjustable frame rate",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runViewer,
	}

	f := rootCmd.Flags()
	f.IntVar(&flagRate, "rate", defaults.Rate, fmt.Sprintf("initial target FPS (%d-%d)", config.MinRate, config.MaxRate))
	f.StringVar(&flagImage, "image", "", "image to display")
	f.IntVar(&flagAdapter, "adapter", defaults.Adapter, "graphics adapter index (see 'adapters')")
	f.StringVar(&flagIcon, "icon", "", "window icon image")
	f.StringVar(&flagFont, "font", "", "TTF font for the overlay (default: Go Regular)")
	f.Float64Var(&flagFontSize, "font-size", defaults.FontSize, "overlay font size")
	f.StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "trace|debug|info|warn|error")
	f.BoolVar(&flagWatch, "watch", defaults.Watch, "reload the image when it changes on disk")
	f.BoolVar(&flagSetup, "setup", false, "ask for rate, image and adapter with dialogs")
	f.BoolVar(&flagNoDialogs, "no-dialogs", false, "never open dialogs")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultConfigPath(), "config file path")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newAdaptersCmd())
	return rootCmd
}

func resolveSettings(cmd *cobra.Command, args []string) (setup.Settings, error) {
	fileCfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return setup.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	s := setup.Defaults().Apply(fileCfg)

	flags := cmd.Flags()
	if flags.Changed("rate") {
		s.Rate = flagRate
	}
	if flags.Changed("image") {
		s.ImagePath = flagImage
	}
	if len(args) == 1 {
		s.ImagePath = args[0]
	}
	if flags.Changed("adapter") {
		s.Adapter = flagAdapter
	}
	if flags.Changed("icon") {
		s.IconPath = flagIcon
	}
	if flags.Changed("font") {
		s.FontPath = flagFont
	}
	if flags.Changed("font-size") {
		s.FontSize = flagFontSize
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if flags.Changed("watch") {
		s.Watch = flagWatch
	}
	return s, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}
	log, err := newLogger(s.LogLevel)
	if err != nil {
		return err
	}

	var prompter setup.Prompter
	if !flagNoDialogs {
		prompter = setup.Dialogs{}
	}
	fail := func(err error) error {
		log.Error().Err(err).Msg("cannot start")
		if prompter != nil {
			prompter.Error(err.Error())
		}
		return err
	}

	s, err = setup.Resolve(s, flagSetup, prompter)
	if errors.Is(err, setup.ErrCanceled) {
		log.Info().Msg("setup canceled")
		return nil
	}
	if err != nil {
		return fail(err)
	}
	log.Info().Int("rate", s.Rate).Str("image", s.ImagePath).
		Str("adapter", setup.Adapters[s.Adapter]).Msg("starting")

	img, err := imageio.Load(s.ImagePath)
	if err != nil {
		return fail(err)
	}
	face, err := game.LoadFace(s.FontPath, s.FontSize)
	if err != nil {
		return fail(err)
	}

	var icon image.Image
	if s.IconPath != "" {
		if icon, err = imageio.Load(s.IconPath); err != nil {
			log.Warn().Err(err).Msg("error loading icon")
			icon = nil
		}
	}

	var watcher *imageio.Watcher
	if s.Watch {
		if watcher, err = imageio.Watch(s.ImagePath, log); err != nil {
			log.Warn().Err(err).Msg("live reload disabled")
			watcher = nil
		} else {
			defer func() {
				if cerr := watcher.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("failed to close watcher")
				}
			}()
		}
	}

	loop := frame.New(s.Rate, rate.SystemTimer, log)
	g, err := game.New(game.Options{
		Loop:    loop,
		Image:   img,
		Face:    face,
		Watcher: watcher,
		Log:     log,
	})
	if err != nil {
		return fail(err)
	}

	b := img.Bounds()
	if err := game.Run(g, game.RunOptions{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Adapter: s.Adapter,
		Icon:    icon,
	}); err != nil {
		return fmt.Errorf("render loop failed: %w", err)
	}
	log.Info().Msg("bye")
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the config path, creating a template if none exists",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := flagConfig
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func newAdaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List graphics adapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i, name := range setup.Adapters {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, name); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}
