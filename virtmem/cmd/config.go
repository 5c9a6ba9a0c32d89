package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Store kinds accepted by --store.
const (
	storeFile   = "file"
	storeMemory = "memory"
	storeSQLite = "sqlite"
)

// Config holds everything a run needs.
type Config struct {
	NumPages  int
	NumFrames int
	Policy    string
	Program   string

	StoreKind   string
	DiskPath    string
	RecordPath  string
	EnvFile     string
	Seed        int64
	Verbose     bool
	ReportUsage bool
}

// envKeys maps flags to the environment variables that can set them.
var envKeys = map[string]string{
	"store":  "VIRTMEM_STORE",
	"disk":   "VIRTMEM_DISK",
	"record": "VIRTMEM_RECORD",
	"seed":   "VIRTMEM_SEED",
}

func bindFlags(c *cobra.Command, cfg *Config) {
	flags := c.Flags()
	flags.StringVar(&cfg.StoreKind, "store", storeFile,
		"backing store: file, memory or sqlite")
	flags.StringVar(&cfg.DiskPath, "disk", "myvirtualdisk",
		"path of the file or sqlite backing store")
	flags.StringVar(&cfg.RecordPath, "record", "",
		"record paging events into <path>.sqlite3")
	flags.StringVar(&cfg.EnvFile, "env-file", ".env",
		"file with VIRTMEM_* defaults, ignored if missing")
	flags.Int64Var(&cfg.Seed, "seed", 0,
		"seed of the rand policy, 0 seeds from the clock")
	flags.BoolVar(&cfg.Verbose, "verbose", false,
		"log every paging event to stderr")
	flags.BoolVar(&cfg.ReportUsage, "report-usage", false,
		"report CPU and memory usage of the process after the run")
}

// applyEnv loads the env file and fills every flag that was not set on the
// command line from its environment variable. Variables already in the
// environment win over the env file.
func applyEnv(c *cobra.Command) error {
	envFile, err := c.Flags().GetString("env-file")
	if err != nil {
		return err
	}

	err = godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	for flag, key := range envKeys {
		value, ok := os.LookupEnv(key)
		if !ok || c.Flags().Changed(flag) {
			continue
		}

		err = c.Flags().Set(flag, value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	return nil
}

func (cfg *Config) parseArgs(args []string) error {
	var err error

	cfg.NumPages, err = parsePositive("npages", args[0])
	if err != nil {
		return err
	}

	cfg.NumFrames, err = parsePositive("nframes", args[1])
	if err != nil {
		return err
	}

	cfg.Policy = args[2]
	cfg.Program = args[3]

	return nil
}

func parsePositive(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}

	return n, nil
}
