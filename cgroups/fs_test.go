package cgroups

import (
	"fmt"
	"os"
	"path"
	"strings"
)

// fakeFS is an in-memory cgroupfs used to exercise the hierarchy algorithms
// without a real mount.
type fakeFS struct {
	groups map[string]*fakeGroup
	// deny maps "<group>" (directory operations) or "<group>/<name>"
	// (file operations) to an error returned instead of performing the
	// operation.
	deny map[string]error
	// log records every file write as "<group> <name> <content>", in
	// order, across all groups.
	log []string
	// appendCalls counts AppendFile invocations, including denied ones.
	appendCalls int
}

type fakeGroup struct {
	controllers []string
	procs       []string
	// subtree holds the tokens appended to cgroup.subtree_control.
	subtree []string
	files   map[string]string

	uid, gid int
	chowned  bool
}

func newFakeFS() *fakeFS {
	f := &fakeFS{groups: map[string]*fakeGroup{}, deny: map[string]error{}}
	f.addGroup("/", nil)
	return f
}

func (f *fakeFS) addGroup(p string, controllers []string) *fakeGroup {
	g := &fakeGroup{controllers: controllers, files: map[string]string{}}
	f.groups[p] = g
	return g
}

func (f *fakeFS) cgroup(p string) CGroup {
	return CGroup{path: p, fs: f}
}

func (f *fakeFS) DirExists(group string) bool {
	return f.groups[group] != nil
}

func (f *fakeFS) MkdirAll(group string) error {
	if err := f.deny[group]; err != nil {
		return err
	}
	for p := group; ; p = path.Dir(p) {
		if f.groups[p] == nil {
			f.addGroup(p, nil)
		}
		if p == "/" {
			break
		}
	}
	return nil
}

func (f *fakeFS) ChownAll(group string, uid, gid int) error {
	if err := f.deny[group]; err != nil {
		return err
	}
	g := f.groups[group]
	if g == nil {
		return os.ErrNotExist
	}
	g.uid, g.gid, g.chowned = uid, gid, true
	return nil
}

func (f *fakeFS) ReadFile(group, name string) ([]byte, error) {
	g := f.groups[group]
	if g == nil {
		return nil, os.ErrNotExist
	}
	switch name {
	case cgroupControllers:
		return []byte(strings.Join(g.controllers, " ") + "\n"), nil
	case cgroupProcs:
		return []byte(strings.Join(g.procs, "\n")), nil
	}
	content, ok := g.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

func (f *fakeFS) WriteFile(group, name string, content []byte) error {
	if err := f.deny[path.Join(group, name)]; err != nil {
		return err
	}
	g := f.groups[group]
	if g == nil {
		return os.ErrNotExist
	}
	if _, ok := g.files[name]; !ok {
		return os.ErrNotExist
	}
	g.files[name] = string(content)
	f.log = append(f.log, fmt.Sprintf("%s %s %s", group, name, content))
	return nil
}

func (f *fakeFS) AppendFile(group, name string, content []byte) error {
	f.appendCalls++
	if err := f.deny[path.Join(group, name)]; err != nil {
		return err
	}
	g := f.groups[group]
	if g == nil {
		return os.ErrNotExist
	}
	switch name {
	case cgroupProcs:
		g.procs = append(g.procs, string(content))
	case cgroupSubtreeControl:
		g.subtree = append(g.subtree, string(content))
	default:
		g.files[name] += string(content)
	}
	f.log = append(f.log, fmt.Sprintf("%s %s %s", group, name, content))
	return nil
}
