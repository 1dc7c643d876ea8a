package main

import (
	"os"

	"acres-chat/internal/app"
)

// @title        Research Paper Assistant API
// @version      1.0
// @description  Chat backend for a retrieval-augmented research paper assistant.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
