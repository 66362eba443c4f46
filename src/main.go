package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"elevatorbank/src/building"
	"elevatorbank/src/config"
	"elevatorbank/src/sim"
	"elevatorbank/src/timer"
	"elevatorbank/src/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	envPath := flag.String("env", "", "dotenv file with ELEVATOR_* overrides")
	calls := flag.String("calls", "", `scripted button presses, e.g. "5U,3D,c0:4"`)
	maxTicks := flag.Uint64("ticks", 0, "stop after this many ticks (0: stop when all calls are served)")
	interactive := flag.Bool("interactive", false, "read button presses from the keyboard ("+keyHelp+")")
	debug := flag.Bool("debug", false, "enable debug logging")
	logPath := flag.String("log", "", "also write logs to this file")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logCloser, err := utils.InitLogger(level, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	requests, err := parseCalls(*calls)
	if err != nil {
		slog.Error("Invalid call script", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, requests, *maxTicks, *interactive); err != nil {
		slog.Error("Simulation failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(configPath, envPath string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	if envPath != "" {
		if err := cfg.ApplyEnvFile(envPath); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config, requests []Request, maxTicks uint64, interactive bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b := building.New(cfg)
	clock := timer.NewClock(cfg.TickInterval)
	mgr := sim.NewManager()
	go clock.Run(ctx)
	go mgr.Run(ctx, b, clock.Ticks())

	snapshots, err := mgr.Subscribe(ctx)
	if err != nil {
		return err
	}
	for _, req := range requests {
		submit(ctx, mgr, req)
	}

	var keys <-chan Request
	if interactive {
		if keys, err = listenKeys(); err != nil {
			return fmt.Errorf("keyboard: %w", err)
		}
		fmt.Println(keyHelp)
	}

	slog.Info("Simulation started", "floors", cfg.NumFloors, "elevators", cfg.NumElevators, "tick", cfg.TickInterval)
	clock.Start()
	prev, err := mgr.Snapshot(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case req, ok := <-keys:
			if !ok {
				return nil
			}
			submit(ctx, mgr, req)
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			fmt.Println(formatStatus(snap))
			for _, change := range building.HallLampChanges(prev, snap) {
				slog.Debug("Hall lamp", "floor", change.Floor, "dir", change.Dir, "lit", change.Lit)
			}
			for _, change := range building.CabLampChanges(prev, snap) {
				slog.Debug("Cab lamp", "elevator", change.ElevatorID, "floor", change.Floor, "lit", change.Lit)
			}
			if err := snap.CheckInvariants(); err != nil {
				return fmt.Errorf("tick %d: %w", snap.Tick, err)
			}
			prev = snap
			if maxTicks > 0 && snap.Tick >= maxTicks {
				clock.Stop()
				return nil
			}
			if maxTicks == 0 && !interactive && snap.Idle() {
				clock.Stop()
				slog.Info("All calls served", "ticks", snap.Tick)
				return nil
			}
		}
	}
}

// submit presses one button. Rejected presses are logged, not fatal.
func submit(ctx context.Context, mgr *sim.Manager, req Request) {
	var err error
	if req.ElevatorID < 0 {
		_, err = mgr.RequestHallCall(ctx, req.Floor, req.Dir)
	} else {
		_, err = mgr.RequestCabCall(ctx, req.ElevatorID, req.Floor)
	}
	if err != nil {
		slog.Warn("Button press rejected", "request", req, "err", err)
	}
}
