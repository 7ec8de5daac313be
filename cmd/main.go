package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"task-tracker/internal/cli"
	"task-tracker/internal/config"
	"task-tracker/internal/logger"
	"task-tracker/internal/service"
	"task-tracker/internal/store/jsonfile"

	"github.com/google/uuid"
)

func main() {
	opts, args, err := cli.ParseGlobalFlags(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stdout, err)
		}
		cli.PrintUsage(os.Stdout)
		return
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.New(os.Stderr, opts.LogLevel, opts.LogFormat).WithError(err).Fatal("failed to load config")
	}
	opts.Apply(cfg)

	log := logger.WithInvocationID(logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format), uuid.NewString())
	log.WithField("store", cfg.Store.Path).Debug("task-cli starting")

	store := jsonfile.New(cfg.Store.Path)

	svc, err := service.New(store, log)
	if err != nil {
		log.WithError(err).Fatal("service initiation failed")
	}

	dispatcher := cli.NewDispatcher(svc, store, os.Stdout, log)
	if err := dispatcher.Run(args); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
