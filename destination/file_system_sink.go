package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/mitchellh/go-homedir"

	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/types"
)

const FileSystemSinkIdentifier = "file_system"

// register the sink from the package init function
func init() {
	Factory.RegisterSinks(NewFileSystemSink)
}

type FileSystemSinkConfig struct {
	Path string `hcl:"path"`
}

func (c *FileSystemSinkConfig) Identifier() string {
	return FileSystemSinkIdentifier
}

func (c *FileSystemSinkConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

// FileSystemSink writes artifacts to files under a base directory
type FileSystemSink struct {
	Config *FileSystemSinkConfig
}

func NewFileSystemSink() Sink {
	return &FileSystemSink{Config: &FileSystemSinkConfig{}}
}

func (s *FileSystemSink) Identifier() string {
	return FileSystemSinkIdentifier
}

func (s *FileSystemSink) Init(_ context.Context, body hcl.Body) error {
	if err := parse.DecodeBody(body, s.Config); err != nil {
		return err
	}

	path, err := homedir.Expand(s.Config.Path)
	if err != nil {
		return fmt.Errorf("error expanding path '%s': %w", s.Config.Path, err)
	}
	s.Config.Path = path

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("error creating destination directory '%s': %w", path, err)
	}

	slog.Info("Initialized FileSystemSink", "path", path)
	return nil
}

func (s *FileSystemSink) Put(_ context.Context, destination string, artifact *types.Artifact) error {
	target := filepath.Join(s.Config.Path, destination)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("error creating directory for '%s': %w", target, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("error creating '%s': %w", target, err)
	}
	defer f.Close()

	if _, err := artifact.Content.WriteTo(f); err != nil {
		return fmt.Errorf("error writing '%s': %w", target, err)
	}

	slog.Debug("FileSystemSink wrote artifact", "destination", target, "label", artifact.Label)
	return nil
}

func (s *FileSystemSink) Close() error {
	return nil
}
