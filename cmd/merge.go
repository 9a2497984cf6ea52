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

var errNeedTwoFiles = errors.New("merge needs two cookie files")

// saveJar replaces the file at path with the jar's records.
func saveJar(fs afero.Fs, path string, jar *cookiejar.Jar) error {
	if exists, _ := afero.Exists(fs, path); exists {
		if err := fs.Remove(path); err != nil {
			return err
		}
	}
	return netscape.Save(fs, path, jar)
}

func merge(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return common.PrintErrWithCmdHelp(ctx, errNeedTwoFiles)
	}

	a, err := loadJar(args[0])
	if err != nil {
		common.PrintRuntimeErr(ctx, "merge", "load", err)
		return nil
	}
	b, err := loadJar(args[1])
	if err != nil {
		common.PrintRuntimeErr(ctx, "merge", "load", err)
		return nil
	}

	merged := cookiejar.Merge(a, b)
	if err := saveJar(afero.NewOsFs(), outputPath, merged); err != nil {
		common.PrintRuntimeErr(ctx, "merge", "save", err)
		return nil
	}

	fmt.Printf("merged %d + %d cookies into %d records: %s\n",
		a.Len(), b.Len(), merged.Len(), outputPath)
	return nil
}
