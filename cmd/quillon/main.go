package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Load a local .env when present; real env vars still win.
	_ = godotenv.Load()
	Execute()
}
