package main

import (
	"errors"

	"github.com/urfave/cli"
)

var createCommand = cli.Command{
	Name:  "create",
	Usage: "create a new control group",
	ArgsUsage: `CGROUP

Where "CGROUP" is the name of the control group, either relative to the
control group of the current process or absolute (starting with "/").`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "user, u",
			Usage: "owner of the control group, applied only if the group is newly created",
		},
	},
	Action: func(context *cli.Context) error {
		if context.NArg() != 1 {
			return errors.New("create requires exactly one control group name")
		}
		cgroup, _, err := currentCgroup(context.Args().First())
		if err != nil {
			return err
		}
		return cgroup.CreateAndChown(context.String("user"))
	},
}
