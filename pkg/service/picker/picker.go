package picker

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
)

// ImageExtensions are the file types offered by the image dialog
var ImageExtensions = []string{".jpg", ".png", ".gif", ".jpeg", ".webp"}

// DefaultCommand opens a native file dialog restricted to images
var DefaultCommand = []string{
	"zenity", "--file-selection", "--title=Select an image",
	"--file-filter=Images | *.jpg *.png *.gif *.jpeg *.webp",
}

// IsImage reports whether path has one of ImageExtensions
func IsImage(path string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(path)))
}

// Command runs an external file dialog and reads the chosen path from its
// standard output. Exit status 1 with no output is treated as a cancel.
type Command struct {
	argv []string
}

var _ interfaces.FilePicker = (*Command)(nil)

// NewCommand creates a picker running argv. An empty argv uses DefaultCommand.
func NewCommand(argv ...string) *Command {
	if len(argv) == 0 {
		argv = DefaultCommand
	}
	return &Command{argv: argv}
}

// PickImage implements interfaces.FilePicker
func (c *Command) PickImage(ctx context.Context) (*string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && stdout.Len() == 0 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "file picker failed",
			goerr.V("command", c.argv[0]),
			goerr.V("stderr", strings.TrimSpace(stderr.String())))
	}

	path := strings.TrimSpace(stdout.String())
	if path == "" {
		return nil, nil
	}
	if !IsImage(path) {
		return nil, goerr.New("selected file is not an image",
			goerr.V("path", path), goerr.V("allowed", ImageExtensions))
	}
	return &path, nil
}
