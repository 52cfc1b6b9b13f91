package main

import (
	"os"

	_ "github.com/lblod/mu-go-template/ext/app"

	"github.com/lblod/mu-go-template/cmd"
	"github.com/lblod/mu-go-template/config"
)

func main() {
	config.LoadEnv()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
