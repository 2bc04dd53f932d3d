package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const HelpBanner = `
┬ ┬┌─┐┬┌─┐┬ ┬┌┬┐┌┐ ┬─┐┬ ┬┌─┐┬ ┬
├─┤├┤ ││ ┬├─┤ │ ├┴┐├┬┘│ │└─┐├─┤
┴ ┴└─┘┴└─┘┴ ┴ ┴ └─┘┴└─└─┘└─┘┴ ┴

Heightmap brush painting tool.
    Version: %s

`

// Version indicates the current build version.
var Version string

func main() {
	if err := run(afero.NewOsFs(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "heightbrush: %v\n", err)
		os.Exit(1)
	}
}
