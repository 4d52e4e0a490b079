package main

import (
	"github.com/jeeftor/responsive-units/cmd"
	"github.com/jeeftor/responsive-units/internal/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.FatalError(err, "rsu")
	}
}
