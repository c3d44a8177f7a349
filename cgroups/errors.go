package cgroups

import (
	"fmt"
	"strings"
)

// LegacyHierarchyError is returned when /proc/<pid>/cgroup is not in the
// single-line "0::<path>" format of the unified hierarchy, which usually
// means the system is running cgroups v1 or a hybrid setup.
type LegacyHierarchyError struct {
	// Content is the trimmed file content that failed to parse.
	Content string
}

func (e *LegacyHierarchyError) Error() string {
	return fmt.Sprintf("unexpected format in cgroup file, are you using cgroups v1?\n\n%s", e.Content)
}

// NotExistError is returned when an operation requires a control group that
// is not present on disk.
type NotExistError struct {
	Group string
}

func (e *NotExistError) Error() string {
	return fmt.Sprintf("control group %s does not exist", e.Group)
}

// PermissionError is returned when a control-file write is denied. This
// usually means the caller needs elevated privileges or delegation of the
// subtree.
type PermissionError struct {
	Group string
	// Action describes the attempted operation, e.g. `assign to` or
	// `enable controller "cpu" in`.
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s control group %s", e.Action, e.Group)
}

// RestrictionUnavailableError is returned when the controller-attribute file
// named by a restriction key does not exist in the group, usually because
// the controller has not been enabled there.
type RestrictionUnavailableError struct {
	Group string
	Key   string
}

func (e *RestrictionUnavailableError) Error() string {
	return fmt.Sprintf("restriction %s is unavailable for control group %s", e.Key, e.Group)
}

// ControllersUnavailableError is returned when requested controllers are
// missing all the way up at the hierarchy root, meaning no ancestor can
// grant them.
type ControllersUnavailableError struct {
	Controllers []string
}

func (e *ControllersUnavailableError) Error() string {
	return fmt.Sprintf("some controllers are not available on this system: %s", strings.Join(e.Controllers, ", "))
}
