package cmd

import "github.com/urfave/cli"

var (
	secureChannel bool
	defaultDomain string
	outputPath    string
	importDomain  string
)

var lineFlags = []cli.Flag{
	cli.BoolFlag{
		Name:        "secure, s",
		Usage:       "treat the channel as encrypted, including secure cookies",
		Destination: &secureChannel,
	},
	cli.StringFlag{
		Name:        "domain, d",
		Usage:       "default domain for records without an explicit one",
		EnvVar:      "COOKIEJAR_DOMAIN",
		Destination: &defaultDomain,
	},
}

var mergeFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "output, o",
		Usage:       "destination cookie file",
		Value:       "cookies.txt",
		Destination: &outputPath,
	},
}

var importFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "domain, d",
		Usage:       "domain to import cookies for (required)",
		EnvVar:      "COOKIEJAR_DOMAIN",
		Destination: &importDomain,
	},
	cli.StringFlag{
		Name:        "output, o",
		Usage:       "destination cookie file",
		Value:       "cookies.txt",
		Destination: &outputPath,
	},
}

var sealFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "output, o",
		Usage:       "destination file",
		Destination: &outputPath,
	},
}
