package main

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/golangid/weathertogo/codebase/app"
	"github.com/golangid/weathertogo/config"
	service "github.com/golangid/weathertogo/internal"
)

const serviceName = "weathertogo"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mFailed to start %s service: %v\x1b[0m\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	cfg, err := config.Init(serviceName)
	if err != nil {
		log.Panic(err)
	}
	defer cfg.Exit(context.Background())

	srv, err := service.NewService(cfg)
	if err != nil {
		log.Panic(err)
	}
	app.New(srv).Run()
}
