package forma

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

// LocalFilesystemVfs is the default Vfs, reading directly from the host
// filesystem. Adapted from the teacher's LocalFilesystemLoader: relative
// paths resolve against an optional base directory, absolute paths are
// used as-is.
type LocalFilesystemVfs struct {
	baseDir string
}

// NewLocalFilesystemVfs returns a Vfs rooted at baseDir. An empty baseDir
// means relative paths are resolved against the process's working
// directory.
func NewLocalFilesystemVfs(baseDir string) *LocalFilesystemVfs {
	return &LocalFilesystemVfs{baseDir: baseDir}
}

func (fs *LocalFilesystemVfs) resolve(path string) string {
	if filepath.IsAbs(path) || fs.baseDir == "" {
		return path
	}
	return filepath.Join(fs.baseDir, path)
}

// ReadAllText reads the full contents of path as a string. I/O failures
// are annotated with juju/errors so the caller (Build, at the lexing
// stage) retains the underlying cause while reporting a single-line
// template diagnostic.
func (fs *LocalFilesystemVfs) ReadAllText(path string) (string, error) {
	data, err := os.ReadFile(fs.resolve(path))
	if err != nil {
		return "", errors.Annotatef(err, "reading template %q", path)
	}
	return string(data), nil
}

// Exists reports whether path can be stat'd successfully.
func (fs *LocalFilesystemVfs) Exists(path string) bool {
	_, err := os.Stat(fs.resolve(path))
	return err == nil
}

// GetExtension returns path's extension including the leading dot (e.g.
// ".txt"), matching filepath.Ext. The include resolution pattern ("try X,
// then X+ext") only works when ext carries the dot, so that's the
// convention this engine documents and sticks to everywhere else
// (the CLI config's defaultExtension, which defaults to ".txt").
func (fs *LocalFilesystemVfs) GetExtension(path string) string {
	return filepath.Ext(path)
}

// LocalIncludeDir resolves include names relative to a single directory,
// adapted from the teacher's SandboxedFilesystemLoader idea of a base
// directory scoping every lookup.
type LocalIncludeDir struct {
	Dir string
}

// NewLocalIncludeDir returns an IncludeDir that joins every lookup onto dir.
func NewLocalIncludeDir(dir string) *LocalIncludeDir {
	return &LocalIncludeDir{Dir: dir}
}

// GetFile joins nameAndExtension onto the include directory. Absolute
// names are returned unchanged.
func (d *LocalIncludeDir) GetFile(nameAndExtension string) string {
	if filepath.IsAbs(nameAndExtension) {
		return nameAndExtension
	}
	return filepath.Join(d.Dir, nameAndExtension)
}
