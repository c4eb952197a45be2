package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kodekulture/wordlister/internal/config"
	"github.com/kodekulture/wordlister/repository"
	"github.com/kodekulture/wordlister/repository/badgr"
	"github.com/kodekulture/wordlister/repository/file"
	"github.com/kodekulture/wordlister/service"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := config.Load(); err != nil {
		zlog.Fatal().Err(err).Msg("failed to read config file")
	}
	lvl, err := zerolog.ParseLevel(config.GetOrDefault("LOG_LEVEL", "info"))
	if err == nil {
		zerolog.SetGlobalLevel(lvl)
		zlog.Debug().Msgf("Setting log level to %v", lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		zlog.Error().Err(err).Msg("wordlister failed")
		stop()
		os.Exit(1)
	}
}

// app holds the dependencies shared by every command
type app struct {
	fs     afero.Fs
	stdout io.Writer
	// openArchive opens the run archive at path and returns a function releasing it
	openArchive func(path string) (repository.Archive, func() error, error)
}

func newApp() *app {
	return &app{
		fs:          afero.NewOsFs(),
		stdout:      os.Stdout,
		openArchive: openBadger,
	}
}

func openBadger(path string) (repository.Archive, func() error, error) {
	// The directory will be created if it doesn't exist.
	db, err := badger.Open(badger.DefaultOptions(path))
	if err != nil {
		return nil, nil, err
	}
	return badgr.New(db), db.Close, nil
}

// service builds a Service. The archive is opened only when withArchive is set;
// the returned function must be called once the command is done.
func (a *app) service(archivePath string, withArchive bool) (*service.Service, func(), error) {
	sink := file.New(a.fs, a.stdout)
	if !withArchive {
		return service.New(sink, nil), func() {}, nil
	}
	archive, closeFn, err := a.openArchive(archivePath)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := closeFn(); err != nil {
			zlog.Err(err).Msg("failed to close archive")
		}
	}
	return service.New(sink, archive), release, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "wordlister",
		Short:         "Categorized wordlist generator and mangler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("archive-path", config.Get("ARCHIVE_PATH"), "directory of the run archive")
	root.SetOut(a.stdout)

	root.AddCommand(
		newGenerateCmd(a),
		newPermuteCmd(a),
		newHistoryCmd(a),
		newAuditCmd(a),
	)
	return root
}
