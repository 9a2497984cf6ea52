package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/warpdl/cookiejar/cmd/common"
	"github.com/warpdl/cookiejar/internal/browser"
	"github.com/warpdl/cookiejar/pkg/cookiejar"
	"github.com/warpdl/cookiejar/pkg/logger"
)

var errNoDomain = errors.New("import needs --domain")

func importStore(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoInputFile)
	}
	if importDomain == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoDomain)
	}

	lg := logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
	cookies, source, err := browser.Import(path, importDomain, lg)
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "read", err)
		return nil
	}

	jar := cookiejar.NewWithDomain(importDomain)
	jar.Grow(len(cookies))
	for _, c := range cookies {
		jar.SetCookie(c)
	}

	if err := saveJar(afero.NewOsFs(), outputPath, jar); err != nil {
		common.PrintRuntimeErr(ctx, "import", "save", err)
		return nil
	}

	fmt.Printf("imported %d cookies from %s store into %s\n",
		jar.Len(), source.Browser, outputPath)
	return nil
}
