package main

import (
	"io"

	"github.com/9seconds/threatmap/threatmap"
	"github.com/rs/zerolog"
)

type logger struct {
	runLog    zerolog.Logger
	updateLog zerolog.Logger
}

func (l *logger) SourcesLoaded(path string, count int) {
	l.runLog.Debug().Str("path", path).Int("sources", count).Msg("Sources are loaded")
}

func (l *logger) LocationsWritten(path string, count int) {
	l.runLog.Info().Str("path", path).Int("locations", count).Msg("Locations are written")
}

func (l *logger) UpdateInfo(name, msg string) {
	l.updateLog.Info().Str("provider", name).Msg(msg)
}

func (l *logger) Fatal(err error, msg string) {
	l.runLog.Fatal().Err(err).Msg(msg)
}

func newLogger(w io.Writer, level zerolog.Level) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	base := zerolog.New(w).Level(level)

	return &logger{
		runLog:    base.With().Timestamp().Str("event_name", "run").Logger(),
		updateLog: base.With().Timestamp().Str("event_name", "update").Logger(),
	}
}

var _ threatmap.Logger = &logger{}
