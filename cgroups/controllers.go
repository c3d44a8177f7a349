package cgroups

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Controllers returns the controllers enabled for the group, read fresh
// from cgroup.controllers. Ordering is whatever the kernel stored; callers
// should treat the result as a set.
func (c CGroup) Controllers() ([]string, error) {
	if !c.Exists() {
		return nil, &NotExistError{Group: c.path}
	}
	data, err := c.fs.ReadFile(c.path, cgroupControllers)
	if err != nil {
		return nil, fmt.Errorf("loading the controllers of %s: %w", c, err)
	}
	return strings.Fields(string(data)), nil
}

// HasProcesses reports whether any process is assigned directly to the
// group.
func (c CGroup) HasProcesses() (bool, error) {
	if !c.Exists() {
		return false, &NotExistError{Group: c.path}
	}
	data, err := c.fs.ReadFile(c.path, cgroupProcs)
	if err != nil {
		return false, fmt.Errorf("loading the processes of %s: %w", c, err)
	}
	return len(bytes.TrimSpace(data)) > 0, nil
}

// EnableControllers makes the requested controllers usable in the group.
//
// A controller is usable at depth N only if every ancestor up to the root
// grants it through cgroup.subtree_control, so enabling walks toward the
// root: controllers the group already has are dropped from the request, and
// the remainder is delegated to the parent via EnableSubtreeControl, which
// recurses back into this method on the parent itself. Already-enabled
// controllers short-circuit before any ancestor check. At the hierarchy
// root, anything still missing cannot be granted at all and a
// ControllersUnavailableError is returned.
func (c CGroup) EnableControllers(requested []string) error {
	if len(requested) == 0 {
		return nil
	}
	enabled, err := c.Controllers()
	if err != nil {
		return err
	}
	needed := make([]string, 0, len(requested))
	for _, name := range requested {
		if !containsString(enabled, name) {
			needed = append(needed, name)
		}
	}
	if len(needed) == 0 {
		logrus.Debugf("controllers %v already enabled in %s", requested, c)
		return nil
	}
	parent, ok := c.Parent()
	if !ok {
		return &ControllersUnavailableError{Controllers: needed}
	}
	return parent.EnableSubtreeControl(needed)
}

// EnableSubtreeControl grants the given controllers to the group's children
// by writing them to cgroup.subtree_control, first making sure the group
// itself has them enabled.
//
// Each controller is written as its own "+name" token. The first permission
// failure aborts the whole call; there is no partial-success continuation.
func (c CGroup) EnableSubtreeControl(controllers []string) error {
	hasProcs, err := c.HasProcesses()
	if err != nil {
		return err
	}
	if hasProcs {
		logrus.Warnf("control group %s owns one or more processes; enabling controllers in children of nonempty control groups can cause unexpected behavior, for example a domain cgroup might be turned into a threaded domain (see https://www.kernel.org/doc/html/latest/admin-guide/cgroup-v2.html)", c)
	}
	if err := c.EnableControllers(controllers); err != nil {
		return err
	}
	for _, name := range controllers {
		// The kernel wants each token written as a single chunk.
		if err := c.fs.AppendFile(c.path, cgroupSubtreeControl, []byte("+"+name)); err != nil {
			if errors.Is(err, os.ErrPermission) {
				return &PermissionError{Group: c.path, Action: fmt.Sprintf("enable controller %q in", name)}
			}
			return fmt.Errorf("enabling controller %q in control group %s: %w", name, c, err)
		}
		logrus.Infof("enabled controller %q for subgroups of %s", name, c)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
