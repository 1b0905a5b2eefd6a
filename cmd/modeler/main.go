// Command modeler plans SageMaker inference deployments for Hugging Face models.
package main

import (
	"fmt"
	"os"

	"modeler/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	root := cli.NewRootCmd(os.Stdout, os.Stderr)
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
