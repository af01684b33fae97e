package main

import (
	"os"

	"gitlab.com/aoterocom/ROEAnalyzer/app"
	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
)

func main() {
	if err := app.NewApp().Run(os.Args); err != nil {
		helpers.Logger.Errorln(err)
		os.Exit(1)
	}
}
