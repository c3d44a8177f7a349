package main

import (
	"errors"

	"github.com/urfave/cli"
)

var classifyCommand = cli.Command{
	Name:      "classify",
	Usage:     "move running processes into a control group",
	ArgsUsage: "CGROUP PID[,PID...]",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "auto, a",
			Usage: "create the control group if it doesn't exist yet",
		},
	},
	Action: func(context *cli.Context) error {
		if context.NArg() < 2 {
			return errors.New("classify requires a control group name and at least one pid")
		}
		pids, err := parsePids(context.Args().Tail())
		if err != nil {
			return err
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
		for _, pid := range pids {
			if err := cgroup.Classify(pid); err != nil {
				return err
			}
		}
		return nil
	},
}
