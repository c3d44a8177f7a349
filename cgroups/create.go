package cgroups

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/opencontainers/runc/libcontainer/user"
	"github.com/sirupsen/logrus"
)

// Create makes the group's directory, along with any missing ancestors, and
// reports whether it was newly created. A group that already exists is a
// success, not an error.
func (c CGroup) Create() (bool, error) {
	if c.Exists() {
		logrus.Infof("control group %s already exists", c)
		return false, nil
	}
	if err := c.fs.MkdirAll(c.path); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return false, &PermissionError{Group: c.path, Action: "create"}
		}
		return false, fmt.Errorf("creating control group %s: %w", c, err)
	}
	logrus.Infof("created control group %s", c)
	return true, nil
}

// CreateAndChown is Create followed by a recursive ownership change to the
// given "user" or "user:group" specification. Ownership is a one-time
// initialization property: it is only applied when the group was newly
// created, and skipped entirely when owner is empty.
func (c CGroup) CreateAndChown(owner string) error {
	created, err := c.Create()
	if err != nil || !created || owner == "" {
		return err
	}
	uid, gid, err := lookupOwner(owner)
	if err != nil {
		return err
	}
	if err := c.fs.ChownAll(c.path, uid, gid); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return &PermissionError{Group: c.path, Action: "set the owner of"}
		}
		return fmt.Errorf("setting owner of control group %s: %w", c, err)
	}
	logrus.Infof("set owner of control group %s to %s", c, owner)
	return nil
}

// lookupOwner resolves a "user" or "user:group" specification against the
// system user database. Without an explicit group, the user's primary group
// is used.
func lookupOwner(owner string) (uid, gid int, err error) {
	username, groupname, _ := strings.Cut(owner, ":")
	u, err := user.LookupUser(username)
	if err != nil {
		return 0, 0, fmt.Errorf("looking up user %q: %w", username, err)
	}
	uid, gid = u.Uid, u.Gid
	if groupname != "" {
		g, err := user.LookupGroup(groupname)
		if err != nil {
			return 0, 0, fmt.Errorf("looking up group %q: %w", groupname, err)
		}
		gid = g.Gid
	}
	return uid, gid, nil
}
