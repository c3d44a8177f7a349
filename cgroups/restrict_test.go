package cgroups

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetRestrictionWritesVerbatim(t *testing.T) {
	f := newFakeFS()
	g := f.addGroup("/a", []string{"cpu"})
	g.files["cpu.max"] = "max 100000"

	require.NoError(t, f.cgroup("/a").SetRestriction("cpu.max", "90000 100000"))
	// The value is written byte for byte, no trailing newline added.
	require.Equal(t, "90000 100000", g.files["cpu.max"])
}

func TestSetRestrictionUnavailable(t *testing.T) {
	f := newFakeFS()
	f.addGroup("/a", nil)

	err := f.cgroup("/a").SetRestriction("cpu.max", "max")
	var unavailable *RestrictionUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, "cpu.max", unavailable.Key)
	require.Equal(t, "/a", unavailable.Group)
}

func TestSetRestrictionPermission(t *testing.T) {
	f := newFakeFS()
	g := f.addGroup("/a", []string{"cpu"})
	g.files["cpu.max"] = "max 100000"
	f.deny["/a/cpu.max"] = os.ErrPermission

	err := f.cgroup("/a").SetRestriction("cpu.max", "90000 100000")
	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	require.Equal(t, "max 100000", g.files["cpu.max"])
}

func TestSetRestrictionMissingGroup(t *testing.T) {
	f := newFakeFS()

	err := f.cgroup("/missing").SetRestriction("cpu.max", "max")
	var notExist *NotExistError
	require.ErrorAs(t, err, &notExist)
}

func TestEnableControllerForRestriction(t *testing.T) {
	f := newFakeFS()
	f.groups["/"].controllers = []string{"cpu", "memory"}
	f.addGroup("/a", nil)
	f.addGroup("/a/b", nil)

	require.NoError(t, f.cgroup("/a/b").EnableControllerForRestriction("cpu.max"))
	require.Equal(t, []string{
		"/ cgroup.subtree_control +cpu",
		"/a cgroup.subtree_control +cpu",
	}, f.log)
}

func TestEnableControllerForRestrictionMalformedKey(t *testing.T) {
	f := newFakeFS()
	f.addGroup("/a", nil)

	require.Error(t, f.cgroup("/a").EnableControllerForRestriction("cpumax"))
	require.Error(t, f.cgroup("/a").EnableControllerForRestriction(".max"))
}
