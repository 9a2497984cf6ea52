package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/warpdl/cookiejar/cmd/common"
	"github.com/warpdl/cookiejar/pkg/cookiejar"
	"github.com/warpdl/cookiejar/pkg/netscape"
)

var errNoInputFile = errors.New("no cookie file specified")

// loadJar loads a Netscape cookie file from the real filesystem.
func loadJar(path string) (*cookiejar.Jar, error) {
	jar := cookiejar.New()
	if err := netscape.Load(afero.NewOsFs(), path, jar); err != nil {
		return nil, err
	}
	return jar, nil
}

func show(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoInputFile)
	}

	jar, err := loadJar(path)
	if err != nil {
		common.PrintRuntimeErr(ctx, "show", "load", err)
		return nil
	}

	for _, c := range jar.Cookies() {
		expires := "session"
		if !c.Session() {
			expires = c.Expires.UTC().Format("2006-01-02 15:04:05 MST")
		}
		flags := ""
		if c.Secure {
			flags += " secure"
		}
		if c.HttpOnly {
			flags += " httponly"
		}
		fmt.Printf("%s=%s\tdomain=%s\tpath=%s\texpires=%s%s\n",
			c.Name, c.Value, c.Domain, c.Path, expires, flags)
	}
	fmt.Printf("%d cookies\n", jar.Len())
	return nil
}
