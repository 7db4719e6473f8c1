package sysinfo

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Info describes the host a suite ran on
type Info struct {
	Hostname      string `json:"hostname"`
	CPUModel      string `json:"cpu_model,omitempty"`
	LogicalCPUs   int    `json:"logical_cpus"`
	MemTotalBytes uint64 `json:"mem_total_bytes,omitempty"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	GoVersion     string `json:"go_version"`
}

// Collect gathers host details for the report header and exported results.
// The procfs-derived fields stay zero-valued on hosts without /proc.
func Collect() Info {
	info := Info{
		LogicalCPUs: runtime.NumCPU(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		GoVersion:   runtime.Version(),
	}
	if hn, err := os.Hostname(); err == nil {
		info.Hostname = hn
	}
	info.CPUModel = cpuModel()
	info.MemTotalBytes = memTotal()
	return info
}

// cpuModel returns the first "model name" entry from /proc/cpuinfo
func cpuModel() string {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ":")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// memTotal returns MemTotal from /proc/meminfo in bytes
func memTotal() uint64 {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "MemTotal:" {
			kb, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return 0
			}
			return kb * 1024
		}
	}
	return 0
}
