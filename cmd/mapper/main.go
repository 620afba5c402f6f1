package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present (GEMINI_API_KEY, DATABASE_URL, FINMAP_LLM_*).
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
