// Package cmd wires the cookiejar command-line interface.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/warpdl/cookiejar/cmd/common"
)

// BuildArgs carries build-time version information into Execute.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

// Execute runs the cookiejar CLI with the given arguments.
func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:         "cookiejar",
		HelpName:     "cookiejar",
		Usage:        "A toolbox for client-side HTTP cookies.",
		Version:      fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:    "cookiejar <command> [arguments...]",
		Description:  DESCRIPTION,
		OnUsageError: common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "show",
				Usage:                  "print the records of a cookie file",
				Description:            ShowDescription,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 show,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "line",
				Aliases:                []string{"l"},
				Usage:                  "build the outgoing Cookie header line from a cookie file",
				Description:            LineDescription,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 line,
				Flags:                  lineFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "merge",
				Aliases:                []string{"m"},
				Usage:                  "merge two cookie files into one",
				Description:            MergeDescription,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 merge,
				Flags:                  mergeFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "import",
				Aliases:                []string{"i"},
				Usage:                  "import cookies from a browser cookie store",
				Description:            ImportDescription,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 importStore,
				Flags:                  importFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "seal",
				Usage:                  "encrypt a cookie file into a sealed store",
				Description:            SealDescription,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 seal,
				Flags:                  sealFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "unseal",
				Usage:                  "decrypt a sealed store into a cookie file",
				Description:            UnsealDescription,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 unseal,
				Flags:                  sealFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "prints the installed version of cookiejar",
				Action:  common.GetVersion,
			},
		},
		Action:      show,
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
