package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/october"
	"github.com/indigo-web/october/config"
	"github.com/indigo-web/october/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		addr       = flag.String("addr", "", "address to listen at, every interface if empty")
		port       = flag.Uint("port", 0, "port to listen at (default 80)")
		root       = flag.String("root", "", "document root (default .)")
		level      = flag.String("log", "", "log level: none, panic, error, info or debug (default info)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(logging.ExitSystemError)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.NET.Addr = *addr
		case "port":
			cfg.NET.Port = uint16(*port)
		case "root":
			cfg.Root.Dir = *root
		case "log":
			cfg.Log.Level = *level
		}
	})

	if *port > 65535 {
		fmt.Fprintf(os.Stderr, "port out of range: %d\n", *port)
		os.Exit(logging.ExitProgramError)
	}

	threshold, err := logging.ParseLevel(cfg.Log.Level)
	if err == nil {
		err = cfg.Validate()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(logging.ExitProgramError)
	}

	log := logging.New(os.Stdout, threshold, logging.WithLogger(logging.Console(os.Stdout)))
	app := october.New(cfg, log)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.Infof("received %s, stopping", sig)
		_ = app.Stop()
	}()

	_ = app.Serve()
}

func loadConfig(path string) (*config.Config, error) {
	if len(path) == 0 {
		return config.Default(), nil
	}

	return config.Load(path)
}
