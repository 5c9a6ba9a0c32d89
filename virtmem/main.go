// Command virtmem runs a workload on simulated demand-paged virtual memory
// and reports how many page faults it caused.
package main

import (
	"github.com/sarchlab/virtmem/virtmem/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
