package main

import (
	"os"

	"github.com/SureshAIOrigin/automatic-eureka/cmd/eureka/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
