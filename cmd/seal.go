package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/warpdl/cookiejar/cmd/common"
	"github.com/warpdl/cookiejar/pkg/sealed"
	"github.com/warpdl/cookiejar/pkg/sealed/keyring"
)

const storeKeyEnv = "COOKIEJAR_STORE_KEY"

var errNoOutput = errors.New("no output file specified (-o)")

// storeKey resolves the sealed store key: the hex-encoded environment
// variable wins, then the OS keyring, then a key file in the user config
// directory. A missing key is generated and stored on first use.
func storeKey() ([]byte, error) {
	if keyHex := os.Getenv(storeKeyEnv); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", storeKeyEnv, err)
		}
		return key, nil
	}

	kr := keyring.NewKeyring()
	key, err := kr.GetKey()
	if err == nil {
		return key, nil
	}
	if key, err = kr.SetKey(); err == nil {
		return key, nil
	}

	// No keyring service; keep the key next to the user's config.
	confDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	fks := keyring.NewFileKeyStore(filepath.Join(confDir, "cookiejar"))
	if key, err := fks.GetKey(); err == nil {
		return key, nil
	}
	return fks.SetKey()
}

func seal(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoInputFile)
	}
	if outputPath == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoOutput)
	}

	jar, err := loadJar(path)
	if err != nil {
		common.PrintRuntimeErr(ctx, "seal", "load", err)
		return nil
	}

	key, err := storeKey()
	if err != nil {
		common.PrintRuntimeErr(ctx, "seal", "key", err)
		return nil
	}

	store := sealed.NewStore(afero.NewOsFs(), outputPath, key)
	if err := store.Save(jar); err != nil {
		common.PrintRuntimeErr(ctx, "seal", "save", err)
		return nil
	}

	fmt.Printf("sealed %d cookies into %s\n", jar.Len(), outputPath)
	return nil
}

func unseal(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoInputFile)
	}
	if outputPath == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoOutput)
	}

	key, err := storeKey()
	if err != nil {
		common.PrintRuntimeErr(ctx, "unseal", "key", err)
		return nil
	}

	store := sealed.NewStore(afero.NewOsFs(), path, key)
	jar, err := store.Load()
	if err != nil {
		common.PrintRuntimeErr(ctx, "unseal", "load", err)
		return nil
	}

	if err := saveJar(afero.NewOsFs(), outputPath, jar); err != nil {
		common.PrintRuntimeErr(ctx, "unseal", "save", err)
		return nil
	}

	fmt.Printf("unsealed %d cookies into %s\n", jar.Len(), outputPath)
	return nil
}
