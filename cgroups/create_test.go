package cgroups

import (
	"errors"
	"os"
	"testing"

	"github.com/opencontainers/runc/libcontainer/user"
)

func TestCreate(t *testing.T) {
	f := newFakeFS()
	cgroup := f.cgroup("/a/b/c")

	created, err := cgroup.Create()
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("Create reported the group as preexisting")
	}
	for _, p := range []string{"/a", "/a/b", "/a/b/c"} {
		if !f.DirExists(p) {
			t.Errorf("missing ancestor %s", p)
		}
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	f := newFakeFS()
	cgroup := f.cgroup("/a")

	if created, err := cgroup.Create(); err != nil || !created {
		t.Fatalf("first Create = (%v, %v)", created, err)
	}
	if created, err := cgroup.Create(); err != nil || created {
		t.Fatalf("second Create = (%v, %v), want (false, nil)", created, err)
	}
}

func TestCreatePermission(t *testing.T) {
	f := newFakeFS()
	f.deny["/a"] = os.ErrPermission

	_, err := f.cgroup("/a").Create()
	var permErr *PermissionError
	if !errors.As(err, &permErr) {
		t.Fatalf("got %v, want PermissionError", err)
	}
}

func TestCreateAndChown(t *testing.T) {
	if _, err := user.LookupUser("root"); err != nil {
		t.Skipf("no root user in the system database: %v", err)
	}

	f := newFakeFS()
	cgroup := f.cgroup("/a")
	if err := cgroup.CreateAndChown("root:root"); err != nil {
		t.Fatal(err)
	}
	g := f.groups["/a"]
	if !g.chowned || g.uid != 0 || g.gid != 0 {
		t.Errorf("group not chowned to root:root: %+v", g)
	}
}

func TestCreateAndChownSkipsExistingGroup(t *testing.T) {
	f := newFakeFS()
	f.addGroup("/a", nil)

	// The owner spec is deliberately bogus: an existing group must
	// short-circuit before any user lookup or chown happens.
	if err := f.cgroup("/a").CreateAndChown("no-such-user-zzz"); err != nil {
		t.Fatal(err)
	}
	if f.groups["/a"].chowned {
		t.Error("ownership changed on a preexisting group")
	}
}

func TestCreateAndChownWithoutOwner(t *testing.T) {
	f := newFakeFS()
	if err := f.cgroup("/a").CreateAndChown(""); err != nil {
		t.Fatal(err)
	}
	if !f.DirExists("/a") {
		t.Error("group was not created")
	}
	if f.groups["/a"].chowned {
		t.Error("ownership changed without an owner spec")
	}
}
