package main

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/urfave/cli"
)

var execCommand = cli.Command{
	Name:      "exec",
	Usage:     "run a program in a control group",
	ArgsUsage: "CGROUP COMMAND [ARGS...]",
	// Flags after the command belong to the command.
	SkipFlagParsing: true,
	Action: func(context *cli.Context) error {
		args := context.Args()
		if len(args) < 2 {
			return errors.New("exec requires a control group name and a command")
		}
		cgroup, changed, err := currentCgroup(args[0])
		if err != nil {
			return err
		}
		// Classification is skipped when the requested group is the one
		// we are already in.
		if changed {
			if err := cgroup.ClassifyCurrent(); err != nil {
				return err
			}
		}
		name, err := exec.LookPath(args[1])
		if err != nil {
			return err
		}
		return syscall.Exec(name, args[1:], os.Environ())
	},
}
