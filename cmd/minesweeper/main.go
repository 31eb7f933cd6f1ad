// Command minesweeper plays the classic 9x9 game in the terminal.
//
// Coordinates follow the historical protocol: `x y mine` toggles a
// mark and `x y free` explores, with x the 1-based column and y the
// 1-based row. Gameplay logs go to a rotating file so the rendered
// board stays readable.
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/dkarpov/minesweeper-cli/internal/config"
	"github.com/dkarpov/minesweeper-cli/internal/game"
	"github.com/dkarpov/minesweeper-cli/internal/minefield"
)

var (
	log = logrus.New()

	configPath string
	mines      int
	seed       uint64
	logPath    string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.IntVar(&mines, "mines", 0, "mine count, 0 asks interactively")
	flag.Uint64Var(&seed, "seed", 0, "fixed mine placement seed, 0 uses the clock")
	flag.StringVar(&logPath, "log-file", "", "game log file, empty uses the config value")
}

func setupLogging(cfg config.Config) {
	logLevel := logrus.WarnLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	minefield.Log = log

	if cfg.LogPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to open game log: ", err)
	}
	log.AddHook(hook)
}

func main() {
	flag.Parse()

	cfg := config.Default()
	config.FromEnv(&cfg)
	if configPath != "" {
		if err := config.Read(configPath, &cfg); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err)
		}
	}
	if mines > 0 {
		cfg.Mines = mines
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))

	gameLog := log.WithField("game_id", uuid.NewString())
	gameLog.WithField("seed", cfg.Seed).Info("starting game")

	field := minefield.New(r)
	loop := game.NewLoop(field, os.Stdin, os.Stdout, gameLog)
	if err := loop.Run(cfg.Mines); err != nil {
		log.Fatal("game aborted: ", err)
	}
}
