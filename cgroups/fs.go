package cgroups

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"golang.org/x/sys/unix"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// cgroupFS is the narrow set of operations the hierarchy algorithms need
// from the mounted cgroupfs. Groups are addressed by their hierarchy path
// ("/a/b"); control files by bare name ("cgroup.procs"). Tests substitute an
// in-memory tree for the real mount.
type cgroupFS interface {
	DirExists(group string) bool
	MkdirAll(group string) error
	ChownAll(group string, uid, gid int) error
	ReadFile(group, name string) ([]byte, error)
	// WriteFile opens an existing control file for writing and writes
	// content in a single chunk. The file is never created.
	WriteFile(group, name string, content []byte) error
	// AppendFile is WriteFile with O_APPEND, for cgroup.procs and
	// cgroup.subtree_control.
	AppendFile(group, name string, content []byte) error
}

var defaultFS cgroupFS = osFS{}

// osFS maps hierarchy paths under UnifiedMountpoint. The mapping itself is
// pure; failures only surface when the resulting location is opened.
type osFS struct{}

func (osFS) resolve(group, name string) (string, error) {
	p, err := securejoin.SecureJoin(UnifiedMountpoint, strings.TrimPrefix(group, "/"))
	if err != nil {
		return "", err
	}
	if name != "" {
		p = filepath.Join(p, name)
	}
	return p, nil
}

func (o osFS) DirExists(group string) bool {
	p, err := o.resolve(group, "")
	if err != nil {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

func (o osFS) MkdirAll(group string) error {
	p, err := o.resolve(group, "")
	if err != nil {
		return err
	}
	return os.MkdirAll(p, dirPerm)
}

func (o osFS) ChownAll(group string, uid, gid int) error {
	p, err := o.resolve(group, "")
	if err != nil {
		return err
	}
	return filepath.WalkDir(p, func(name string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return os.Chown(name, uid, gid)
	})
}

func (o osFS) ReadFile(group, name string) ([]byte, error) {
	p, err := o.resolve(group, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	for err != nil && errors.Is(err, unix.EINTR) {
		data, err = os.ReadFile(p)
	}
	return data, err
}

func (o osFS) WriteFile(group, name string, content []byte) error {
	return o.write(group, name, content, os.O_WRONLY)
}

func (o osFS) AppendFile(group, name string, content []byte) error {
	return o.write(group, name, content, os.O_WRONLY|os.O_APPEND)
}

func (o osFS) write(group, name string, content []byte, flag int) error {
	p, err := o.resolve(group, name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p, flag, filePerm)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(content)
	for err != nil && errors.Is(err, unix.EINTR) {
		_, err = f.Write(content)
	}
	return err
}
