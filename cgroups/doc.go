// Package cgroups manipulates unified control groups (cgroups v2) through
// the cgroupfs mounted at /sys/fs/cgroup.
//
// The hierarchy is shared, externally mutable state. Nothing here takes
// locks: existence checks and read-then-write sequences have TOCTOU windows
// that are accepted under the assumption that a single operator or
// automation driver manages a given subtree at a time. In particular,
// EnableControllers treats "already enabled" as sufficient to skip the
// ancestor walk even though an ancestor could revoke the controller
// out-of-band between calls.
package cgroups
