package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/threatmap/providers"
	"github.com/9seconds/threatmap/threatmap"
)

const version = "0.1.0"

var (
	app = kingpin.New(
		"threatmap",
		"Aggregate threat source counts by geographic location")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("THREATMAP_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("THREATMAP_CONFIG").
			String()

	aggregateCommand = app.Command("aggregate",
		"Resolve threat sources and write locations table.").
		Default()
	downloadCommand = app.Command("download",
		"Download GeoLite2 City database from MaxMind.")
)

func init() {
	app.Version(version)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := zerolog.WarnLevel
	if *debug {
		level = zerolog.DebugLevel
	}

	log := newLogger(os.Stderr, level)
	fs := afero.NewOsFs()

	conf, err := parseConfig(fs, *configPath)
	if err != nil {
		log.Fatal(err, "Cannot parse config")
	}

	switch command {
	case aggregateCommand.FullCommand():
		if err := runAggregate(fs, conf, log); err != nil {
			log.Fatal(err, "Cannot aggregate threat sources")
		}
	case downloadCommand.FullCommand():
		if err := runDownload(fs, conf, log); err != nil {
			log.Fatal(err, "Cannot download database")
		}
	}
}

func runAggregate(fs afero.Fs, conf *config, log threatmap.Logger) error {
	prov, shutdown, err := makeProvider(fs, conf)
	if err != nil {
		return err
	}

	defer shutdown()

	_, err = threatmap.New(fs, prov, log).Run(threatmap.Paths{
		Sources: conf.GetSourcesPath(),
		Output:  conf.GetOutputPath(),
	})

	return err
}

func runDownload(fs afero.Fs, conf *config, log threatmap.Logger) error {
	ctx, cancel := makeRootContext()
	defer cancel()

	downloader, err := providers.NewMaxmindLite(makeHTTPClient(conf), conf.GetLicenseKey())
	if err != nil {
		return err
	}

	validator, err := makeOfflineProvider(conf)
	if err != nil {
		return err
	}

	return threatmap.UpdateDatabase(ctx, fs, downloader, validator, conf.GetDatabasePath(), log)
}
