package geometry

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"time"

	"cncquote/internal/logger"
)

// ExecKernel invokes an external geometry-kernel executable per request.
// The command receives the model file path as its last argument and must
// print a single JSON object to stdout:
//
//	{"volume_mm3": 12345.6, "bounding_box": {"dx_mm": 10, "dy_mm": 20, "dz_mm": 30}}
type ExecKernel struct {
	command string
	args    []string
	timeout time.Duration
}

// NewExecKernel creates a kernel binding for the given command. A
// non-positive timeout disables the wall-clock bound.
func NewExecKernel(command string, args []string, timeout time.Duration) *ExecKernel {
	return &ExecKernel{
		command: command,
		args:    args,
		timeout: timeout,
	}
}

func (k *ExecKernel) ImportSolid(ctx context.Context, path string) (Solid, error) {
	if k.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.timeout)
		defer cancel()
	}

	args := append(append([]string{}, k.args...), path)
	cmd := exec.CommandContext(ctx, k.command, args...)
	if k.timeout > 0 {
		// Bound the post-kill wait on stdout/stderr pipes: orphaned
		// grandchildren of the kernel process can otherwise hold the
		// pipes open past the deadline.
		cmd.WaitDelay = k.timeout
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		logger.CtxWarn(ctx, "geometry kernel timed out",
			"command", k.command,
			"timeout", k.timeout,
		)
		return Solid{}, ErrExtractionTimeout
	}
	if err != nil {
		// Kernel detail is logged server-side only, never returned upstream.
		logger.CtxWithError(ctx, "geometry kernel failed", err,
			"command", k.command,
			"stderr", stderr.String(),
		)
		return Solid{}, ErrExtraction
	}

	var solid Solid
	if err := json.Unmarshal(stdout.Bytes(), &solid); err != nil {
		logger.CtxWithError(ctx, "geometry kernel produced unparseable output", err,
			"command", k.command,
		)
		return Solid{}, ErrExtraction
	}

	// A non-positive volume means the file held no solid body (empty
	// assembly, wireframe-only geometry); same rejection as a parse error.
	if solid.VolumeMM3 <= 0 {
		logger.CtxWarn(ctx, "geometry kernel reported no solid body",
			"volume_mm3", solid.VolumeMM3,
		)
		return Solid{}, ErrExtraction
	}

	return solid, nil
}
