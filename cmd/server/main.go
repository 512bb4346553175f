package main

import (
	"github.com/joho/godotenv"

	"github.com/apurva4122/barcoding-sub001/internal/app/server"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()
	server.Run()
}
