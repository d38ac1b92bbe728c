// Package runner invokes the external tkn tool that performs the actual
// clipboard append.
package runner

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tool is the external append command. Zero arguments target the default
// notebook; one argument names an explicit notebook.
const Tool = "tkn"

const (
	launchFailureMessage  = "Unable to run tkn. Ensure the Taken CLI is installed."
	genericFailureMessage = "tkn exited with an error."
)

// installDirs are appended to the inherited PATH so the tool is found even
// when launched from a minimal environment.
var installDirs = []string{"/usr/local/bin", "/opt/homebrew/bin", "/usr/bin", "/bin"}

// Outcome reports a single invocation. Message is set only on failure.
type Outcome struct {
	OK      bool
	Message string
}

func failure(message string) Outcome {
	return Outcome{Message: message}
}

// Runner launches the append tool. A single invocation runs to completion
// with no timeout and no retry; the result is surfaced for the user to act
// on.
type Runner struct {
	tool string
	path string
}

func New() *Runner {
	return NewWithPath(Tool, searchPath(os.Getenv("PATH")))
}

// NewWithPath builds a runner with an explicit tool name and search path,
// bypassing the environment. Used by tests and by anything that needs a
// pinned toolchain.
func NewWithPath(tool, path string) *Runner {
	return &Runner{tool: tool, path: path}
}

// searchPath appends the standard install directories to the inherited PATH,
// skipping ones already present.
func searchPath(inherited string) string {
	dirs := filepath.SplitList(inherited)
	seen := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		seen[dir] = true
	}
	for _, dir := range installDirs {
		if !seen[dir] {
			dirs = append(dirs, dir)
		}
	}
	return strings.Join(dirs, string(os.PathListSeparator))
}

// Run invokes the tool with the given arguments and blocks until it exits.
// Non-zero exits surface the trimmed stderr text, or a generic fallback when
// the tool printed nothing.
func (r *Runner) Run(args ...string) Outcome {
	exe, err := r.resolve()
	if err != nil {
		return failure(launchFailureMessage)
	}

	cmd := exec.Command(exe, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			message := strings.TrimSpace(stderr.String())
			if message == "" {
				message = genericFailureMessage
			}
			return failure(message)
		}
		return failure(launchFailureMessage)
	}

	return Outcome{OK: true}
}

// resolve locates the tool on the constructed search path.
func (r *Runner) resolve() (string, error) {
	if strings.ContainsRune(r.tool, os.PathSeparator) {
		if isExecutable(r.tool) {
			return r.tool, nil
		}
		return "", errors.New("not executable: " + r.tool)
	}

	for _, dir := range filepath.SplitList(r.path) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, r.tool)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", errors.New("not found on search path: " + r.tool)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
