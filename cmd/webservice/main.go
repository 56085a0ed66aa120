package main

import (
	"gtshop/config"
	"gtshop/internal/app"
)

func main() {
	cfg := config.CreateNewConfig()
	app.StartApp(cfg)
}
