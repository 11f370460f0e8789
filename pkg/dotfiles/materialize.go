package dotfiles

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/arthur-debert/archup/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// Linker materializes a link set through the synthfs operation
// pipeline. Conditional entries are resolved against the filesystem
// up front; everything that survives runs as one batch.
type Linker struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewLinker creates a Linker that checks conditional sources on fs
func NewLinker(fs types.FS) *Linker {
	return &Linker{
		fs:     fs,
		logger: logging.GetLogger("dotfiles.linker"),
	}
}

// Materialize applies the link set. Force-link entries replace
// whatever occupies the target; conditional entries whose source is
// absent are skipped, never failed.
func (l *Linker) Materialize(ctx context.Context, links []LinkSpec) error {
	sfs := synthfs.New()

	var ops []synthfs.Operation
	for _, spec := range links {
		specOps, err := l.convertSpec(sfs, spec)
		if err != nil {
			return err
		}
		ops = append(ops, specOps...)
	}

	if len(ops) == 0 {
		l.logger.Debug().Msg("No link operations to run")
		return nil
	}

	// Targets are absolute paths under the home directory and /etc
	osfs := filesystem.NewOSFileSystem("/")
	pathAwareFS := synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()

	options := synthfs.DefaultPipelineOptions()
	// Re-running the tool is the recovery story, not rollback
	options.RollbackOnError = false

	l.logger.Debug().Int("operationCount", len(ops)).Msg("Materializing links")

	result, err := synthfs.RunWithOptions(ctx, pathAwareFS, options, ops...)
	l.logResults(result)
	if err != nil {
		return errors.Wrap(err, errors.ErrLinkCreate, "materializing links failed")
	}
	return nil
}

func (l *Linker) convertSpec(sfs *synthfs.SynthFS, spec LinkSpec) ([]synthfs.Operation, error) {
	switch spec.Mode {
	case ModeLink:
		return l.linkOps(sfs, spec), nil

	case ModeLinkIfExists:
		if !l.exists(spec.Source) {
			l.logger.Info().
				Str("source", spec.Source).
				Str("target", spec.Target).
				Msg("Not in the dotfiles tree, skipping link")
			return nil, nil
		}
		return l.linkOps(sfs, spec), nil

	case ModeCopyIfExists:
		if !l.exists(spec.Source) {
			l.logger.Debug().
				Str("source", spec.Source).
				Msg("System file absent, skipping copy")
			return nil, nil
		}
		return []synthfs.Operation{
			sfs.CustomOperationWithID(opID("copy", spec.Target), copyFileOperation(spec.Source, spec.Target)),
		}, nil

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown link mode: %s", spec.Mode)
	}
}

// linkOps ensures the target's parent directory and force-creates the
// symlink
func (l *Linker) linkOps(sfs *synthfs.SynthFS, spec LinkSpec) []synthfs.Operation {
	var ops []synthfs.Operation

	target := spec.Target
	targetDir := filepath.Dir(target)
	homeDir, _ := os.UserHomeDir()
	if targetDir != "." && targetDir != "/" && targetDir != homeDir {
		ops = append(ops, sfs.CreateDirWithID(opID("mkdir", targetDir), targetDir, 0755))
	}

	source := spec.Source
	ops = append(ops, sfs.CustomOperationWithID(opID("link", target), func(ctx context.Context, fs filesystem.FileSystem) error {
		// Replace whatever occupies the target, file or stale link
		if err := fs.Remove(target); err != nil && !os.IsNotExist(err) {
			return err
		}
		return fs.Symlink(source, target)
	}))
	return ops
}

// copyFileOperation overwrites target with the content of source,
// creating the parent directory when needed
func copyFileOperation(source, target string) func(context.Context, filesystem.FileSystem) error {
	return func(ctx context.Context, fs filesystem.FileSystem) error {
		parentDir := filepath.Dir(target)
		if parentDir != "." && parentDir != "/" {
			if err := fs.MkdirAll(parentDir, 0755); err != nil {
				return fmt.Errorf("failed to create parent directory %s: %w", parentDir, err)
			}
		}

		file, err := fs.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}

		if err := fs.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		return nil
	}
}

func (l *Linker) exists(path string) bool {
	_, err := l.fs.Stat(path)
	return err == nil
}

func (l *Linker) logResults(result *synthfs.Result) {
	if result == nil {
		return
	}
	for _, opResult := range result.GetOperations() {
		synthfsResult, ok := opResult.(synthfs.OperationResult)
		if !ok {
			continue
		}
		if synthfsResult.Status == synthfs.StatusSuccess {
			l.logger.Trace().
				Str("operationID", string(synthfsResult.OperationID)).
				Dur("duration", synthfsResult.Duration).
				Msg("Operation succeeded")
			continue
		}
		l.logger.Error().
			Err(synthfsResult.Error).
			Str("operationID", string(synthfsResult.OperationID)).
			Msg("Operation failed")
	}
}

func opID(kind, path string) string {
	return fmt.Sprintf("%s_%s_%d", kind, filepath.Base(path), time.Now().UnixNano())
}
