package localfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/moby/sys/atomicwriter"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/utils/safe"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Client writes the local copy of the pushed file
type Client struct{}

var _ interfaces.LocalFile = (*Client)(nil)

func New() *Client {
	return &Client{}
}

func (x *Client) EnsureExists(path string, content []byte) (bool, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, goerr.Wrap(err, "failed to stat local file", goerr.V("path", path))
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return false, goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}

	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	} else if err != nil {
		return false, goerr.Wrap(err, "failed to create local file", goerr.V("path", path))
	}

	if _, err := fd.Write(content); err != nil {
		safe.Close(fd)
		safe.Remove(path)
		return false, goerr.Wrap(err, "failed to write local file", goerr.V("path", path))
	}
	if err := fd.Close(); err != nil {
		return false, goerr.Wrap(err, "failed to close local file", goerr.V("path", path))
	}

	return true, nil
}

// Write replaces the file atomically so a concurrent reader never sees a partial file.
func (x *Client) Write(path string, content []byte) error {
	path = filepath.Clean(path)
	if err := atomicwriter.WriteFile(path, content, filePerm); err != nil {
		return goerr.Wrap(err, "failed to write local file", goerr.V("path", path))
	}
	return nil
}
