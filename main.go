package main

import (
	"github.com/DrunkMunki/Suggester/bot"
	"github.com/DrunkMunki/Suggester/db"

	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()
	zap.ReplaceGlobals(logger.Desugar())

	db.InitDB()

	bot.Start(logger)
}
