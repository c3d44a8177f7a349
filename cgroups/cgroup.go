package cgroups

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// UnifiedMountpoint is the conventional cgroup2 mount location.
	UnifiedMountpoint = "/sys/fs/cgroup"

	cgroupProcs          = "cgroup.procs"
	cgroupControllers    = "cgroup.controllers"
	cgroupSubtreeControl = "cgroup.subtree_control"
)

// CGroup identifies a control group by its absolute path within the unified
// hierarchy, e.g. "/system.slice/foo.service". The group may or may not
// exist on disk.
//
// The zero value is not usable; construct with Current, FromProcPIDCgroup or
// FromPath.
type CGroup struct {
	path string
	fs   cgroupFS
}

// Current returns the control group of the current process.
func Current() (CGroup, error) {
	return FromProcPIDCgroup(os.Getpid())
}

// FromProcPIDCgroup returns the control group of the given process, read
// from /proc/<pid>/cgroup.
func FromProcPIDCgroup(pid int) (CGroup, error) {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "cgroup"))
	if err != nil {
		return CGroup{}, fmt.Errorf("reading cgroup of pid %d: %w", pid, err)
	}
	return parseProcCgroup(data)
}

// parseProcCgroup parses the content of /proc/<pid>/cgroup. On the unified
// hierarchy this is a single line of the form "0::<path>"; the legacy
// multi-hierarchy format is rejected with a LegacyHierarchyError.
func parseProcCgroup(data []byte) (CGroup, error) {
	content := strings.TrimSpace(string(data))
	if strings.ContainsRune(content, '\n') || !strings.HasPrefix(content, "0::") {
		return CGroup{}, &LegacyHierarchyError{Content: content}
	}
	return FromPath(strings.TrimPrefix(content, "0::")), nil
}

// FromPath returns a CGroup for an explicit hierarchy path.
func FromPath(p string) CGroup {
	return CGroup{path: path.Clean("/" + p), fs: defaultFS}
}

// Path returns the group's path within the hierarchy.
func (c CGroup) Path() string {
	return c.path
}

func (c CGroup) String() string {
	return c.path
}

// Append composes a path fragment onto the group. An absolute fragment
// replaces the path wholesale; a relative fragment is joined onto it.
// It reports whether the path actually changed, so callers can skip
// reclassifying themselves when the requested group is the one they are
// already in. Fragments like "." or "" normalize to no change.
func (c *CGroup) Append(fragment string) bool {
	var next string
	if strings.HasPrefix(fragment, "/") {
		next = path.Clean(fragment)
	} else {
		next = path.Join(c.path, fragment)
	}
	if next == c.path {
		return false
	}
	c.path = next
	return true
}

// Parent returns the parent group, or false if the group is the hierarchy
// root.
func (c CGroup) Parent() (CGroup, bool) {
	if c.path == "/" {
		return CGroup{}, false
	}
	return CGroup{path: path.Dir(c.path), fs: c.fs}, true
}

// Exists reports whether the group's directory exists on disk at this
// moment. There is no lock between this check and any later operation.
func (c CGroup) Exists() bool {
	return c.fs.DirExists(c.path)
}
