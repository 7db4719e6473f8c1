package cpu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// WorkerIDEnv carries the coordinator-assigned worker ID into a burn-worker
// child process. The worker echoes it in every result so the coordinator can
// reject output that does not belong to the worker it spawned.
const WorkerIDEnv = "SYSMARK_WORKER_ID"

// burnRequest is one instruction to a worker: run a single-slice time-boxed
// burn for the given duration.
type burnRequest struct {
	DurationNs int64 `json:"duration_ns"`
}

// ServeWorker runs the child half of the multi-core protocol: it decodes one
// JSON burn request per line from r, executes the burn, and encodes the
// WorkerResult as one JSON line to w, until r reaches EOF. A clean EOF
// returns nil; anything else ends the worker with the underlying error.
func ServeWorker(ctx context.Context, id uuid.UUID, r io.Reader, w io.Writer) error {
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(w)

	for {
		var req burnRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode burn request: %w", err)
		}

		res, err := Run(ctx, time.Duration(req.DurationNs), 1)
		if err != nil {
			return fmt.Errorf("burn: %w", err)
		}

		out := benchmark.WorkerResult{ID: id, WorkloadResult: res}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode worker result: %w", err)
		}
	}
}
