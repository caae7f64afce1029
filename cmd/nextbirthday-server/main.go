package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tartampluch/go-nextbirthday/internal/config"
	"github.com/tartampluch/go-nextbirthday/internal/engine"
	"github.com/tartampluch/go-nextbirthday/internal/server"
)

// main delegates to runMain so deferred calls run before the process
// terminates. os.Exit() does not run defers, so we return an integer
// code first.
func main() {
	os.Exit(runMain())
}

// runMain manages configuration, logging, signal handling, and the
// server lifecycle.
func runMain() int {
	flag.String(config.FlagHost, config.DefaultHost, config.FlagDescHost)
	flag.IntP(config.FlagPort, "p", config.DefaultPort, config.FlagDescPort)
	flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	flag.StringSlice(config.FlagCORSOrigins, []string{config.DefaultCORSOrigin}, config.FlagDescCORS)
	flag.Parse()

	viper.SetEnvPrefix(config.EnvPrefix)
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ErrBindFlags, err)
		return config.ExitCodeError
	}
	viper.AutomaticEnv()

	if viper.GetBool(config.FlagVersion) {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(viper.GetBool(config.FlagDebug))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	srv := server.New(server.Config{
		Host:           viper.GetString(config.FlagHost),
		Port:           viper.GetInt(config.FlagPort),
		AllowedOrigins: viper.GetStringSlice(config.FlagCORSOrigins),
		Clock:          engine.RealClock{},
	})

	if err := srv.Start(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// setupLogging configures the default slog logger to emit JSON on stdout.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
