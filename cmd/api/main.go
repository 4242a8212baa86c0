package main

import (
	"log"

	"stocksuggest/cmd"
	"stocksuggest/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	err = apiHandler.StartApi(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
}
