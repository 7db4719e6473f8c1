package cpu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// WorkerPool abstracts the worker-process fan-out behind the multi-core CPU
// benchmark: Start launches n workers, RunSlice has every worker burn for
// one slice and collects all n results, Shutdown reaps the processes.
type WorkerPool interface {
	Start(n int) error
	RunSlice(d time.Duration) ([]benchmark.WorkerResult, error)
	Shutdown() error
}

// shutdownGrace bounds how long Shutdown waits for a worker to exit after
// its stdin is closed before killing it.
const shutdownGrace = 5 * time.Second

// ProcessPool runs burn workers as separate OS processes, so the multi-core
// benchmark measures real parallel execution rather than goroutine
// scheduling inside one runtime. The zero value re-executes the current
// binary in --burn-worker mode; Command, Args and Env override the child
// invocation (tests point them at a helper process).
type ProcessPool struct {
	Command string
	Args    []string
	Env     []string

	workers []*workerProc
}

type workerProc struct {
	id     uuid.UUID
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	in     *json.Encoder
	out    *json.Decoder
	stderr bytes.Buffer
	reaped bool
}

var _ WorkerPool = (*ProcessPool)(nil)

// Start launches n worker processes. On any launch failure the workers
// already running are torn down before the error is returned.
func (p *ProcessPool) Start(n int) error {
	if n < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", n)
	}
	if p.workers != nil {
		return fmt.Errorf("pool already started")
	}

	command, args := p.Command, p.Args
	if command == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate executable: %w", err)
		}
		command = exe
		if args == nil {
			args = []string{"--burn-worker"}
		}
	}

	for i := 0; i < n; i++ {
		w := &workerProc{id: uuid.New()}

		cmd := exec.Command(command, args...)
		env := append(os.Environ(), p.Env...)
		cmd.Env = append(env, WorkerIDEnv+"="+w.id.String())
		cmd.Stderr = &w.stderr

		stdin, err := cmd.StdinPipe()
		if err != nil {
			_ = p.Shutdown()
			return fmt.Errorf("worker %d: stdin pipe: %w", i, err)
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			_ = p.Shutdown()
			return fmt.Errorf("worker %d: stdout pipe: %w", i, err)
		}
		if err := cmd.Start(); err != nil {
			_ = p.Shutdown()
			return fmt.Errorf("worker %d: start: %w", i, err)
		}

		w.cmd = cmd
		w.stdin = stdin
		w.in = json.NewEncoder(stdin)
		w.out = json.NewDecoder(stdout)
		p.workers = append(p.workers, w)
	}
	return nil
}

// RunSlice has every worker burn for d and blocks until all of them have
// answered. The slice is only as fast as its slowest worker; a worker that
// dies, emits garbage, or answers with the wrong ID fails the whole slice
// rather than silently deflating it.
func (p *ProcessPool) RunSlice(d time.Duration) ([]benchmark.WorkerResult, error) {
	if len(p.workers) == 0 {
		return nil, fmt.Errorf("pool not started")
	}

	req := burnRequest{DurationNs: int64(d)}
	for i, w := range p.workers {
		if err := w.in.Encode(req); err != nil {
			return nil, p.workerFailure(i, fmt.Errorf("send burn request: %w", err))
		}
	}

	results := make([]benchmark.WorkerResult, 0, len(p.workers))
	for i, w := range p.workers {
		var res benchmark.WorkerResult
		if err := w.out.Decode(&res); err != nil {
			return nil, p.workerFailure(i, fmt.Errorf("read result: %w", err))
		}
		if res.ID != w.id {
			return nil, p.workerFailure(i, fmt.Errorf("result carries worker id %s, want %s", res.ID, w.id))
		}
		results = append(results, res)
	}
	return results, nil
}

// workerFailure reaps the failed worker so its stderr buffer is safe to
// read, then builds the fatal error for the caller.
func (p *ProcessPool) workerFailure(i int, cause error) error {
	w := p.workers[i]
	_ = w.stdin.Close()
	if w.cmd.Process != nil {
		_ = w.cmd.Process.Kill()
	}
	_ = w.cmd.Wait()
	w.reaped = true

	if msg := strings.TrimSpace(w.stderr.String()); msg != "" {
		return fmt.Errorf("worker %d (%s): %w (stderr: %s)", i, w.id, cause, msg)
	}
	return fmt.Errorf("worker %d (%s): %w", i, w.id, cause)
}

// Shutdown closes every worker's stdin and reaps the processes, killing any
// that outlive the grace period. Safe to call more than once and after a
// failed Start.
func (p *ProcessPool) Shutdown() error {
	workers := p.workers
	p.workers = nil

	var firstErr error
	for i, w := range workers {
		if w.reaped {
			continue
		}
		_ = w.stdin.Close()

		done := make(chan error, 1)
		go func() { done <- w.cmd.Wait() }()

		var err error
		select {
		case err = <-done:
		case <-time.After(shutdownGrace):
			_ = w.cmd.Process.Kill()
			err = <-done
		}
		w.reaped = true
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("worker %d exited abnormally: %w", i, err)
		}
	}
	return firstErr
}
