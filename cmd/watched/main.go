package main

import (
	"log"

	"github.com/mlutra/watched/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ watched failed to start: %v", err)
	}
}
