package main

import (
	"fmt"
	"os"

	"github.com/aarogyaai/aarogya-backend/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Server listening", "port", a.Cfg.Port)
	if err := a.Run(fmt.Sprintf(":%d", a.Cfg.Port)); err != nil {
		a.Log.Error("Server failed", "error", err)
	}
}
