/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"

	"github.com/psykit/psyk/pkg/psyq"
)

// writeArchiveAtomic writes the archive to a temporary sibling file and
// renames it over path, so a crash mid-write never leaves a truncated
// archive behind.
func writeArchiveAtomic(lib *psyq.Lib, path string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), ksuid.New()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := psyq.WriteLib(lib, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write archive: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// modulesFromPaths builds archive members from OBJ files
func modulesFromPaths(paths []string) ([]psyq.Module, error) {
	modules := make([]psyq.Module, 0, len(paths))
	for _, path := range paths {
		m, err := psyq.NewModuleFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", path, err)
		}
		modules = append(modules, m)
	}
	return modules, nil
}
