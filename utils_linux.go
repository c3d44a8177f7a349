package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/moby/sys/mountinfo"

	"github.com/octave-online/cg2tools/cgroups"
)

// checkCgroup2 verifies the unified hierarchy is mounted at the conventional
// location before any command runs. When it is not, the mount table is
// consulted to produce a more helpful message.
func checkCgroup2() error {
	if cgroups.IsCgroup2UnifiedMode() {
		return nil
	}
	mounts, err := mountinfo.GetMounts(mountinfo.FSTypeFilter("cgroup2"))
	if err == nil && len(mounts) > 0 {
		return fmt.Errorf("%s is not a cgroup2 mount (cgroup2 is mounted at %s); cg2 only supports the conventional mountpoint", cgroups.UnifiedMountpoint, mounts[0].Mountpoint)
	}
	return errors.New("the cgroup v2 unified hierarchy is not mounted; this system appears to use cgroups v1")
}

// currentCgroup returns the control group of the calling process with the
// given name fragment appended, plus whether appending changed the group.
func currentCgroup(fragment string) (cgroups.CGroup, bool, error) {
	cgroup, err := cgroups.Current()
	if err != nil {
		return cgroups.CGroup{}, false, err
	}
	changed := cgroup.Append(fragment)
	return cgroup, changed, nil
}

// parsePids parses decimal process IDs from args, each of which may itself
// be a comma-separated list.
func parsePids(args []string) ([]int, error) {
	var pids []int
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			pid, err := strconv.Atoi(s)
			if err != nil || pid <= 0 {
				return nil, fmt.Errorf("invalid pid %q", s)
			}
			pids = append(pids, pid)
		}
	}
	return pids, nil
}

// parseControllers parses controller names spelled the way the kernel
// expects them in cgroup.subtree_control: "+cpu". Disabling ("-cpu") is not
// supported yet.
func parseControllers(args []string) ([]string, error) {
	var names []string
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			if tok == "" {
				continue
			}
			if !strings.HasPrefix(tok, "+") || len(tok) == 1 {
				return nil, errors.New("controllers may only be enabled for now; pass them with +, as in: +cpu +memory")
			}
			names = append(names, tok[1:])
		}
	}
	return names, nil
}

type restriction struct {
	key   string
	value string
}

// parseKeyValue parses a KEY=VALUE restriction argument. Keys are restricted
// to the characters the kernel uses for controller files and must contain a
// dot separating the controller from the attribute.
func parseKeyValue(input string) (restriction, error) {
	key, value, ok := strings.Cut(input, "=")
	if !ok {
		return restriction{}, fmt.Errorf("expected KEY=VALUE, got %q", input)
	}
	for _, r := range key {
		if r != '_' && r != '.' && (r < 'a' || r > 'z') {
			return restriction{}, fmt.Errorf("restriction key %q contains invalid characters", key)
		}
	}
	if !strings.Contains(key, ".") {
		return restriction{}, fmt.Errorf("restriction key %q must be of the form CONTROLLER.RESTRICTION", key)
	}
	return restriction{key: key, value: value}, nil
}
