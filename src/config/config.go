package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors              = 6
	NumElevators           = 2
	HomeFloor              = 1
	TickInterval           = 250 * time.Millisecond
	TravelDuration         = 1 * time.Second
	DoorTransitionDuration = 500 * time.Millisecond
	DoorOpenDuration       = 3 * time.Second
	LoadPenalty            = 1 * time.Second
)

// Config is fixed for the lifetime of a simulation session.
type Config struct {
	NumFloors              int           `yaml:"NumFloors"`
	NumElevators           int           `yaml:"NumElevators"`
	HomeFloors             []int         `yaml:"HomeFloors"`
	TickInterval           time.Duration `yaml:"TickInterval"`
	TravelDuration         time.Duration `yaml:"TravelDuration"`
	DoorTransitionDuration time.Duration `yaml:"DoorTransitionDuration"`
	DoorOpenDuration       time.Duration `yaml:"DoorOpenDuration"`
	LoadPenalty            time.Duration `yaml:"LoadPenalty"`
}

func Default() Config {
	return Config{
		NumFloors:              NumFloors,
		NumElevators:           NumElevators,
		TickInterval:           TickInterval,
		TravelDuration:         TravelDuration,
		DoorTransitionDuration: DoorTransitionDuration,
		DoorOpenDuration:       DoorOpenDuration,
		LoadPenalty:            LoadPenalty,
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnvFile overrides fields with ELEVATOR_* keys from a dotenv file, e.g.
//
//	ELEVATOR_NUM_FLOORS=8
//	ELEVATOR_DOOR_OPEN_DURATION=2s
func (cfg *Config) ApplyEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}
	return cfg.applyEnv(env)
}

func (cfg *Config) applyEnv(env map[string]string) error {
	ints := map[string]*int{
		"ELEVATOR_NUM_FLOORS":    &cfg.NumFloors,
		"ELEVATOR_NUM_ELEVATORS": &cfg.NumElevators,
	}
	durations := map[string]*time.Duration{
		"ELEVATOR_TICK_INTERVAL":            &cfg.TickInterval,
		"ELEVATOR_TRAVEL_DURATION":          &cfg.TravelDuration,
		"ELEVATOR_DOOR_TRANSITION_DURATION": &cfg.DoorTransitionDuration,
		"ELEVATOR_DOOR_OPEN_DURATION":       &cfg.DoorOpenDuration,
		"ELEVATOR_LOAD_PENALTY":             &cfg.LoadPenalty,
	}
	for key, field := range ints {
		if value, ok := env[key]; ok {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*field = n
		}
	}
	for key, field := range durations {
		if value, ok := env[key]; ok {
			d, err := time.ParseDuration(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*field = d
		}
	}
	if value, ok := env["ELEVATOR_HOME_FLOORS"]; ok {
		cfg.HomeFloors = nil
		for _, part := range strings.Split(value, ",") {
			floor, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("ELEVATOR_HOME_FLOORS: %w", err)
			}
			cfg.HomeFloors = append(cfg.HomeFloors, floor)
		}
	}
	return cfg.Validate()
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.NumFloors < 2 {
		errs = append(errs, fmt.Errorf("NumFloors must be at least 2, got %d", cfg.NumFloors))
	}
	if cfg.NumElevators < 1 {
		errs = append(errs, fmt.Errorf("NumElevators must be at least 1, got %d", cfg.NumElevators))
	}
	if len(cfg.HomeFloors) != 0 && len(cfg.HomeFloors) != cfg.NumElevators {
		errs = append(errs, fmt.Errorf("HomeFloors has %d entries for %d elevators", len(cfg.HomeFloors), cfg.NumElevators))
	}
	for _, floor := range cfg.HomeFloors {
		if floor < 1 || floor > cfg.NumFloors {
			errs = append(errs, fmt.Errorf("home floor %d outside [1, %d]", floor, cfg.NumFloors))
		}
	}
	if cfg.TickInterval <= 0 {
		errs = append(errs, errors.New("TickInterval must be positive"))
	}
	if cfg.TravelDuration <= 0 || cfg.DoorTransitionDuration <= 0 || cfg.DoorOpenDuration <= 0 {
		errs = append(errs, errors.New("travel and door durations must be positive"))
	}
	if cfg.LoadPenalty < 0 {
		errs = append(errs, errors.New("LoadPenalty must not be negative"))
	}
	return errors.Join(errs...)
}

// HomeFloor returns the floor elevator id starts at.
func (cfg Config) HomeFloor(id int) int {
	if id < len(cfg.HomeFloors) {
		return cfg.HomeFloors[id]
	}
	return HomeFloor
}

func (cfg Config) TravelTicks() int         { return cfg.ticks(cfg.TravelDuration) }
func (cfg Config) DoorTransitionTicks() int { return cfg.ticks(cfg.DoorTransitionDuration) }
func (cfg Config) DwellTicks() int          { return cfg.ticks(cfg.DoorOpenDuration) }

// ticks rounds d up to whole ticks, never less than one.
func (cfg Config) ticks(d time.Duration) int {
	n := int((d + cfg.TickInterval - 1) / cfg.TickInterval)
	return max(n, 1)
}
