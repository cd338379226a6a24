package main

import (
	"os"

	"ai-lab/backend/internal/app"
)

// @title          AI Lab API
// @version        1.0
// @description    Chat threads with model-generated responses, document bookkeeping and a vector store.
// @BasePath       /
func main() {
	os.Exit(app.Run())
}
