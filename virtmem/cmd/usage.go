package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/shirou/gopsutil/process"
)

func reportUsage(w io.Writer) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return err
	}

	memInfo, err := p.MemoryInfo()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "cpu percent = %.1f\n", cpuPercent)
	fmt.Fprintf(w, "memory rss = %d\n", memInfo.RSS)

	return nil
}
