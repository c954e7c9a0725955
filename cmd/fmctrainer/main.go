// FMC Stage Trainer - CLI application for practicing Fewest Moves Challenge stages.
package main

import (
	"github.com/cubetools/fmctrainer/internal/cli"
)

func main() {
	cli.Execute()
}
