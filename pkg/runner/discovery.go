package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/gofmlint/internal/logging"
)

// ErrInvalidExtension is returned when an explicitly named file does not
// match any configured extension.
var ErrInvalidExtension = errors.New("invalid file extension")

// Discover finds lintable files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute paths.
//
// Directories with zero matching files are not an error. An explicitly
// named file with an unconfigured extension is.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()
	paths := opts.effectivePaths()

	// Use a map for deduplication.
	seen := make(map[string]struct{})
	var files []string

	for _, inputPath := range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			var discovered []string
			if opts.Recursive {
				discovered, err = walkDirectory(ctx, absPath, workDir, extensions, opts)
			} else {
				discovered, err = listDirectory(ctx, absPath, extensions)
			}
			if err != nil {
				return nil, err
			}
			if len(discovered) == 0 {
				logging.FromContext(ctx).Info("no matching files in directory",
					logging.FieldPath, inputPath,
					logging.FieldExtensions, extensions)
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
			continue
		}

		// An explicitly named file must carry a configured extension.
		if !hasMatchingExtension(absPath, extensions) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		if _, ok := seen[absPath]; !ok {
			seen[absPath] = struct{}{}
			files = append(files, absPath)
		}
	}

	// Sort for deterministic ordering.
	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// listDirectory returns matching files from the immediate entries of dir.
// Subdirectories are not descended into.
func listDirectory(ctx context.Context, dir string, extensions []string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasMatchingExtension(entry.Name(), extensions) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// walkDirectory recursively walks root and returns matching files.
// A directory is skipped when its path relative to workDir ends with an
// excluded directory name, unless it also ends with an included one.
func walkDirectory(
	ctx context.Context,
	root string,
	workDir string,
	extensions []string,
	opts Options,
) ([]string, error) {
	excluded := opts.excludedDirs()
	included := opts.includedDirs()

	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Unreadable entries abort the walk; discovery must enumerate the
		// whole tree or fail, never report a clean run over part of one.
		if walkErr != nil {
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if endsWithAny(relPath, excluded) && !endsWithAny(relPath, included) {
				return filepath.SkipDir
			}
			return nil
		}

		// Non-matching files are silently skipped.
		if hasMatchingExtension(path, extensions) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// endsWithAny reports whether the slash-normalized path equals or ends with
// one of the given directory names as its final component.
func endsWithAny(relPath string, names []string) bool {
	rel := filepath.ToSlash(relPath)
	for _, name := range names {
		name = strings.Trim(filepath.ToSlash(name), "/")
		if name == "" {
			continue
		}
		if rel == name || strings.HasSuffix(rel, "/"+name) {
			return true
		}
	}
	return false
}
