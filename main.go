package main

import (
	_ "embed"
	"os"

	goversion "github.com/caarlos0/go-version"

	"github.com/dlvhdr/texttype/cmd/texttype"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	builtBy = ""
)

func main() {
	if err := texttype.Execute(buildVersion(version, commit, date, builtBy)); err != nil {
		os.Exit(1)
	}
}

const website = "https://github.com/dlvhdr/texttype"

//go:embed internal/tui/art/logo.txt
var asciiArt string

func buildVersion(version, commit, date, builtBy string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("TEXTTYPE", "Typewriter text animations for the terminal", website),
		goversion.WithASCIIName(asciiArt),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if date != "" {
				i.BuildDate = date
			}
			if version != "" {
				i.GitVersion = version
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
