package io

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

// writeFileAtomic streams write's output into a temporary file next to path
// and renames it over path once write and the flush succeed.
func writeFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errs.WrapIO(err, "create %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return errs.WrapIO(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return errs.WrapIO(err, "close %s", path)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return errs.WrapIO(err, "chmod %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errs.WrapIO(err, "rename %s", path)
	}
	return nil
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
