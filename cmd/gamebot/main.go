package main

import (
	"log"

	corecmd "github.com/m3rciful/gamebot/core/cmd"
	coreconfig "github.com/m3rciful/gamebot/core/config"
	"github.com/m3rciful/gamebot/internal/app"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "GAMEBOT_CONFIG",
		DefaultConfigPath: "config.yaml",
		DotenvFiles:       []string{".env"},
		LoadConfig:        coreconfig.Load,
		Bootstrap:         app.Bootstrap,
	})
	if err != nil {
		log.Fatal(err)
	}
}
