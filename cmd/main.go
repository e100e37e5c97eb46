package main

import (
	"github.com/laptopstore/oms/internal/app"
	"github.com/laptopstore/oms/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
