package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"foodinfo/database"
	"foodinfo/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	sampleCmd := flag.NewFlagSet("sample", flag.ExitOnError)
	withTags := sampleCmd.Bool("tags", true, "Also load tag categories and tags")

	tagsCmd := flag.NewFlagSet("tags", flag.ExitOnError)
	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "sample":
		sampleCmd.Parse(os.Args[2:])
		if err := utils.SeedSampleData(database.DB); err != nil {
			log.Fatalf("Failed to load sample data: %v", err)
		}
		if *withTags {
			if err := utils.SeedTags(database.DB); err != nil {
				log.Fatalf("Failed to load tags: %v", err)
			}
		}
	case "tags":
		tagsCmd.Parse(os.Args[2:])
		if err := utils.SeedTags(database.DB); err != nil {
			log.Fatalf("Failed to load tags: %v", err)
		}
	case "clear":
		clearCmd.Parse(os.Args[2:])
		if err := utils.CleanupSampleData(database.DB); err != nil {
			log.Fatalf("Failed to clear sample data: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sample   Load sample users, ingredients, fridges, measures and recipes")
	fmt.Println("           --tags=false to skip tag loading")
	fmt.Println("  tags     Load tag categories and tags only")
	fmt.Println("  clear    Remove all seeded sample data")
}
