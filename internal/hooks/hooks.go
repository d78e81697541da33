// Package hooks runs optional shell commands when the wizard is completed or
// dismissed.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mark3labs/firstrun/internal/logger"
)

// ConfigFileName is the name of the hooks configuration file, read from the
// root of the pages directory.
const ConfigFileName = "firstrun.hooks.yml"

// LoadConfig loads the hooks configuration from fsys.
// Returns nil if the config file doesn't exist (hooks are optional).
// Returns an error only if the file exists but cannot be parsed.
func LoadConfig(fsys fs.FS) (*Config, error) {
	if fsys == nil {
		return nil, nil
	}
	data, err := fs.ReadFile(fsys, ConfigFileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No hooks config found")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config (version: %d)", cfg.Version)
	return &cfg, nil
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	Run     string
	Pages   int
	DataDir string
}

// Execute runs a hook command and returns its output.
// Template variables in the command ({{run}}, {{pages}}, {{data_dir}}) are
// expanded before execution. Failures and timeouts are logged and reported
// in the output with a nil error; only context cancellation is an error.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || strings.TrimSpace(hook.Command) == "" {
		return "", nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	name, args := shell(command)
	cmd := exec.CommandContext(execCtx, name, args...)
	cmd.Dir = workDir
	// Grandchildren holding the output pipes must not stall Wait past the timeout.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return fmt.Sprintf("[Hook timed out after %ds]\nPartial output:\n%s", timeout, stdout.String()), nil
	}

	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		output := stdout.String()
		if stderr.Len() > 0 {
			output += "\n[stderr]\n" + stderr.String()
		}
		return fmt.Sprintf("[Hook command failed: %v]\n%s", err, output), nil
	}

	output := stdout.String()
	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
		output += "\n[stderr]\n" + stderr.String()
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(output))
	return output, nil
}

func shell(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	return strings.NewReplacer(
		"{{run}}", vars.Run,
		"{{pages}}", strconv.Itoa(vars.Pages),
		"{{data_dir}}", vars.DataDir,
	).Replace(command)
}
