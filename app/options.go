package app

import (
	"flag"
)

type Options struct {
	DevicesJSON string
	DevicesFile string
	DryRun      bool
	SkipVerify  bool
	NoRootCheck bool
}

func ParseOptions(args []string) (Options, error) {
	var opts Options

	flagSet := flag.NewFlagSet("hot-resize-args", flag.ContinueOnError)
	flagSet.StringVar(&opts.DevicesJSON, "devices", "", "JSON array of devices to resize")
	flagSet.StringVar(&opts.DevicesFile, "devices-file", "", "Read the devices JSON array from this file")
	flagSet.BoolVar(&opts.DryRun, "dry-run", false, "Log planned commands without executing them")
	flagSet.BoolVar(&opts.SkipVerify, "skip-verify", false, "Skip the post-resize size verification")
	flagSet.BoolVar(&opts.NoRootCheck, "no-root-check", false, "Skip the effective-uid check (not recommended)")

	err := flagSet.Parse(args[1:])
	return opts, err
}
