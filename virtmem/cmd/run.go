package cmd

import (
	"fmt"
	"io"

	"github.com/sarchlab/virtmem/datarecording"
	"github.com/sarchlab/virtmem/mem/disk"
	"github.com/sarchlab/virtmem/mem/vm"
	"github.com/sarchlab/virtmem/mem/vm/paging"
	"github.com/sarchlab/virtmem/workload"
)

func run(cfg Config, stdout, stderr io.Writer) error {
	err := paging.CheckPolicy(cfg.Policy)
	if err != nil {
		return err
	}

	program, err := workload.Lookup(cfg.Program)
	if err != nil {
		return err
	}

	backing, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer backing.Close()

	store := disk.NewCountingStore(backing)
	pageTable := vm.NewPageTable(cfg.NumPages, cfg.NumFrames)

	dispatcher, err := paging.MakeBuilder().
		WithPageTable(pageTable).
		WithStore(store).
		WithPolicy(cfg.Policy).
		WithSeed(cfg.Seed).
		Build()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		dispatcher.AcceptHook(paging.NewLogHook(stderr))
	}

	if cfg.RecordPath != "" {
		recorder, err := attachRecorder(dispatcher, cfg.RecordPath)
		if err != nil {
			return err
		}
		defer recorder.Close()
	}

	result := program(vm.NewMemory(pageTable, dispatcher))

	fmt.Fprintf(stdout, "%s result is %d\n", cfg.Program, result)
	fmt.Fprintf(stdout, "page fault count = %d\n", dispatcher.NumFaults())
	fmt.Fprintf(stdout, "disk reads = %d\n", store.Reads())
	fmt.Fprintf(stdout, "disk writes = %d\n", store.Writes())

	if cfg.ReportUsage {
		return reportUsage(stdout)
	}

	return nil
}

func openStore(cfg Config) (disk.Store, error) {
	switch cfg.StoreKind {
	case storeFile:
		return disk.OpenFile(cfg.DiskPath, cfg.NumPages)
	case storeSQLite:
		return disk.OpenSQLite(cfg.DiskPath, cfg.NumPages)
	case storeMemory:
		return disk.NewMemStore(cfg.NumPages), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.StoreKind)
	}
}

func attachRecorder(
	dispatcher *paging.Dispatcher,
	path string,
) (datarecording.DataRecorder, error) {
	recorder, err := datarecording.New(path)
	if err != nil {
		return nil, err
	}

	hook, err := paging.NewRecordingHook(recorder)
	if err != nil {
		recorder.Close()
		return nil, err
	}

	dispatcher.AcceptHook(hook)

	return recorder, nil
}
