// Command wm is a dynamic X11 tiling window manager (§1).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	console "github.com/phsym/console-slog"

	"github.com/mozzenior/wm/internal/config"
	"github.com/mozzenior/wm/internal/wm"
	"github.com/mozzenior/wm/internal/xgbwm"
)

const version = "wm-0.1"

func main() {
	showVersion := flag.Bool("v", false, "print version information and exit")
	configPath := flag.String("config", defaultConfigPath(), "path to the YAML configuration overlay")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] [-config path]\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	log := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{Level: slog.LevelInfo}))

	overlay, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading config overlay", "err", err)
		os.Exit(1)
	}

	cfg := wm.DefaultConfig()
	cfg.ApplyOverlay(overlay, log.Warn)

	surface, err := xgbwm.Connect(log, cfg.MaxTitleBytes)
	if err != nil {
		log.Error("connecting to X server", "err", err)
		os.Exit(1)
	}
	defer surface.Close()

	engine := wm.NewEngine(cfg, surface, log)
	engine.Scan()
	engine.Run()
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wm", "config.yaml")
	}
	return "wm.yaml"
}
