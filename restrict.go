package main

import (
	"errors"

	"github.com/urfave/cli"
)

var restrictCommand = cli.Command{
	Name:  "restrict",
	Usage: "set restrictions in a control group",
	ArgsUsage: `CGROUP KEY=VALUE [KEY=VALUE...]

Restrictions are written verbatim to the named controller file, for example
"cpu.weight=150". See https://docs.kernel.org/admin-guide/cgroup-v2.html for
the available keys.`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "auto, a",
			Usage: "create the control group if it doesn't exist yet and enable the required controllers if they aren't enabled yet",
		},
	},
	Action: func(context *cli.Context) error {
		if context.NArg() < 2 {
			return errors.New("restrict requires a control group name and at least one KEY=VALUE pair")
		}
		restrictions := make([]restriction, 0, context.NArg()-1)
		for _, arg := range context.Args().Tail() {
			r, err := parseKeyValue(arg)
			if err != nil {
				return err
			}
			restrictions = append(restrictions, r)
		}

		cgroup, _, err := currentCgroup(context.Args().First())
		if err != nil {
			return err
		}
		auto := context.Bool("auto")
		if auto {
			if _, err := cgroup.Create(); err != nil {
				return err
			}
		}
		for _, r := range restrictions {
			if auto {
				if err := cgroup.EnableControllerForRestriction(r.key); err != nil {
					return err
				}
			}
			if err := cgroup.SetRestriction(r.key, r.value); err != nil {
				return err
			}
		}
		return nil
	},
}
