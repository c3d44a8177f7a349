package cgroups

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Classify moves the given process into the group by appending its pid to
// cgroup.procs. The group must already exist; this is checked up front so a
// missing group reports as such rather than as an open error on the
// membership file.
func (c CGroup) Classify(pid int) error {
	if !c.Exists() {
		return &NotExistError{Group: c.path}
	}
	content := []byte(strconv.Itoa(pid))
	var err error
	for i := 0; i < 5; i++ {
		err = c.fs.AppendFile(c.path, cgroupProcs, content)
		if err == nil {
			logrus.Debugf("assigned %d to control group %s", pid, c)
			return nil
		}
		// EINVAL might mean the task being added is still in state
		// TASK_NEW. Attempt again shortly.
		if errors.Is(err, unix.EINVAL) {
			time.Sleep(30 * time.Millisecond)
			continue
		}
		break
	}
	if errors.Is(err, os.ErrPermission) {
		return &PermissionError{Group: c.path, Action: "assign to"}
	}
	return fmt.Errorf("assigning %d to control group %s: %w", pid, c, err)
}

// ClassifyCurrent moves the current process into the group.
func (c CGroup) ClassifyCurrent() error {
	return c.Classify(os.Getpid())
}
