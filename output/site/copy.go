package site

import (
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/mdsite/core"
)

// CopyStatic copies the directory tree src to dst. If dst exists, it is
// removed first.
func CopyStatic(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return fileError(err, "static folder %s", src)
	}
	if err := os.RemoveAll(dst); err != nil {
		return fileError(err, "cannot clean %s", dst)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fileError(err, "cannot create %s", dst)
	}
	return copyDir(src, dst)
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fileError(err, "cannot read folder %s", src)
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			tracer().Debugf("creating directory %s", to)
			if err := os.Mkdir(to, 0755); err != nil {
				return fileError(err, "cannot create %s", to)
			}
			if err := copyDir(from, to); err != nil {
				return err
			}
			continue
		}
		tracer().Debugf("copying file %s -> %s", from, to)
		if err := copyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return fileError(err, "cannot open %s", from)
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return fileError(err, "cannot stat %s", from)
	}
	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fileError(err, "cannot create %s", to)
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return fileError(err, "cannot copy %s", from)
	}
	if err = out.Close(); err != nil {
		return fileError(err, "cannot write %s", to)
	}
	return nil
}

// fileError wraps a file system error, using code EMISSING for non-existing
// files and EIO otherwise.
func fileError(err error, format string, v ...interface{}) error {
	tracer().Errorf(err.Error())
	if os.IsNotExist(err) {
		return core.WrapError(err, core.EMISSING, format, v...)
	}
	return core.WrapError(err, core.EIO, format, v...)
}
