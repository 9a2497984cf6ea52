package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/warpdl/cookiejar/cmd/common"
)

func line(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoInputFile)
	}

	jar, err := loadJar(path)
	if err != nil {
		common.PrintRuntimeErr(ctx, "line", "load", err)
		return nil
	}
	if defaultDomain != "" {
		jar.SetDefaultDomain(defaultDomain)
	}

	fmt.Println(jar.CookieLine(secureChannel))
	return nil
}
