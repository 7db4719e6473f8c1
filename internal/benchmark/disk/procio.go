package disk

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// ReadSelfIO returns this process's cumulative storage-layer byte counters
// from /proc/self/io. These count bytes the kernel actually exchanged with
// the storage layer, as opposed to page-cache traffic, so a before/after
// delta around a workload shows how much of it reached the device. ok is
// false when the counters are unavailable (non-Linux hosts, restricted
// procfs).
func ReadSelfIO() (counters benchmark.IOCounters, ok bool) {
	data, err := os.ReadFile("/proc/self/io")
	if err != nil {
		return benchmark.IOCounters{}, false
	}

	var haveRead, haveWrite bool
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ":")
		if !found {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			continue
		}
		switch key {
		case "read_bytes":
			counters.ReadBytes, haveRead = n, true
		case "write_bytes":
			counters.WriteBytes, haveWrite = n, true
		}
	}
	return counters, haveRead && haveWrite
}
