package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

var controlCommand = cli.Command{
	Name:      "control",
	Usage:     "list or recursively enable controllers in a control group",
	ArgsUsage: "CGROUP [+CONTROLLER[,+CONTROLLER...]]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "inherit",
			Usage: "enable every controller that is enabled in the given control group, relative to the control group of the current process",
		},
		cli.BoolFlag{
			Name:  "auto, a",
			Usage: "create the control group if it doesn't exist yet",
		},
	},
	Action: func(context *cli.Context) error {
		if context.NArg() < 1 {
			return errors.New("control requires a control group name")
		}

		inherit := context.String("inherit")
		listOnly := inherit == "" && context.NArg() == 1

		var controllers []string
		var err error
		switch {
		case inherit != "":
			if context.NArg() > 1 {
				return errors.New("--inherit cannot be combined with an explicit controller list")
			}
			// The inherit source is never created, not even with --auto.
			source, _, err := currentCgroup(inherit)
			if err != nil {
				return err
			}
			if controllers, err = source.Controllers(); err != nil {
				return err
			}
		case !listOnly:
			if controllers, err = parseControllers(context.Args().Tail()); err != nil {
				return err
			}
		}

		cgroup, _, err := currentCgroup(context.Args().First())
		if err != nil {
			return err
		}
		if context.Bool("auto") {
			if _, err := cgroup.Create(); err != nil {
				return err
			}
		}
		if listOnly {
			list, err := cgroup.Controllers()
			if err != nil {
				return err
			}
			fmt.Printf("controllers enabled in %s: %s\n", cgroup, strings.Join(list, " "))
			return nil
		}
		return cgroup.EnableControllers(controllers)
	},
}
