// Package main provides the entry point for the candidate matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate matching and ranking engine",
	Long:  "Candidate matcher scores and ranks candidate profiles against job requirements using weighted multi-dimensional scoring, with optional semantic similarity and bias detection.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
