package cgroups

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetRestriction writes value verbatim to the controller-attribute file
// named by key (for example "cpu.max" = "90000 100000") inside the group.
// No trailing newline is added and the value is not interpreted; see
// https://docs.kernel.org/admin-guide/cgroup-v2.html for the per-file
// formats.
func (c CGroup) SetRestriction(key, value string) error {
	if !c.Exists() {
		return &NotExistError{Group: c.path}
	}
	if err := c.fs.WriteFile(c.path, key, []byte(value)); err != nil {
		switch {
		case errors.Is(err, os.ErrPermission):
			return &PermissionError{Group: c.path, Action: fmt.Sprintf("set restriction %s in", key)}
		case errors.Is(err, os.ErrNotExist):
			return &RestrictionUnavailableError{Group: c.path, Key: key}
		}
		return fmt.Errorf("setting restriction %s in control group %s: %w", key, c, err)
	}
	logrus.Infof("restriction %s=%q set in control group %s", key, value, c)
	return nil
}

// EnableControllerForRestriction enables the controller a restriction key
// belongs to, derived as the prefix of key before its first dot. Used by
// auto modes that apply restrictions without a separate explicit enabling
// step.
func (c CGroup) EnableControllerForRestriction(key string) error {
	controller, _, ok := strings.Cut(key, ".")
	if !ok || controller == "" {
		return fmt.Errorf("restriction key %q is not of the form controller.attribute", key)
	}
	return c.EnableControllers([]string{controller})
}
