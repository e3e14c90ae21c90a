package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/float-bubble/app"
	"github.com/lixenwraith/float-bubble/audio"
	"github.com/lixenwraith/float-bubble/config"
)

var (
	cfgFile   string
	debugMode bool
	colorMode string
	soundMode bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "float-bubble",
		Short:        "A draggable bubble that flings and snaps to the nearest side",
		SilenceUsage: true,
		RunE:         runBubble,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: configs/config.yaml)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Write debug logs to logs/float-bubble.log")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Color mode: auto, truecolor, 256")
	rootCmd.Flags().BoolVar(&soundMode, "sound", false, "Play a cue when the bubble comes to rest")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE:  runConfig,
	}
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	return config.Dump(cmd.OutOrStdout(), cfg)
}

// applyColorMode steers tcell's colour detection through its environment variables
func applyColorMode(mode string) error {
	switch mode {
	case "auto", "":
		return nil
	case "256":
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		return os.Setenv("COLORTERM", "truecolor")
	default:
		return fmt.Errorf("unknown color mode: %s (use auto, truecolor or 256)", mode)
	}
}

func runBubble(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = soundMode
	}
	if err := applyColorMode(colorMode); err != nil {
		return err
	}

	logger, logFile := setupLogging(debugMode)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crash", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFLOAT-BUBBLE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	screen.HideCursor()

	opts := []app.Option{app.WithLogger(logger)}
	if cfg.Sound.Enabled {
		player := audio.NewPlayer(cfg.Sound.Volume)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the bubble works without sound
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer player.Cleanup()
			opts = append(opts, app.WithPlayer(player))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.String("color", colorMode),
		zap.Bool("sound", cfg.Sound.Enabled),
		zap.Duration("settle", cfg.Animation.Duration),
	)
	return app.New(cfg, screen, opts...).Run(ctx)
}
