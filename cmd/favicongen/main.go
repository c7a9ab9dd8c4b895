// favicongen renders the web app logo into its favicon files.
package main

import (
	"os"

	"github.com/mattn/go-colorable"
)

func main() {
	if err := newRootCmd(colorable.NewColorableStdout(), colorable.NewColorableStderr()).Execute(); err != nil {
		os.Exit(1)
	}
}
