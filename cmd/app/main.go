package main

import (
	"context"
	"errors"
	"io/fs"

	"orderflow/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

//	@title			Order Workflow
//	@version		1.0.0
//	@description	Moves orders through their lifecycle (created, shipped, delivered, paid, completed, cancelled).
//	@BasePath		/
func main() {
	// A missing .env file is not an error.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	if err := cmd.NewRootCommand(viper.New()).ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
