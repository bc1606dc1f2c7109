package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/sdk"
	"github.com/paarad/27-backroom-generator/pkg/utils"
)

const usage = `Commands:
  <prompt>        generate a level from the prompt
  image           generate an image for the current level
  save [author]   save the current level
  list            list saved levels
  show <id>       show a saved level
  exit            quit`

func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	// An explicit backend URL argument wins over the environment
	if len(os.Args) > 1 {
		cfg.Set("BACKROOM_API_URL", os.Args[1])
	}

	client := sdk.NewClient(cfg.GetWithDefault("BACKROOM_API_URL", "http://localhost:8080"))

	ctx := context.Background()
	if err := client.Health(ctx); err != nil {
		log.Fatalf("[COMMANDLINE]: Backend is not reachable: %v", err)
	}

	if err := startInteractiveSession(ctx, client); err != nil {
		log.Fatalf("[COMMANDLINE]: %v", err)
	}
}

// startInteractiveSession reads commands from stdin until exit or end of input
func startInteractiveSession(ctx context.Context, client *sdk.Client) error {
	fmt.Println("Backroom generator started. Type 'help' for commands or 'exit' to quit.")

	var current *backroom.Level
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		command, rest, _ := strings.Cut(input, " ")
		rest = strings.TrimSpace(rest)

		switch command {
		case "":
			continue

		case "exit":
			return nil

		case "help":
			fmt.Println(usage)

		case "image":
			if current == nil {
				fmt.Println("Generate a level first.")
				continue
			}
			imageURL, err := client.GenerateImage(ctx, current)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			current = current.WithImage(imageURL)
			fmt.Printf("Image: %s\n", imageURL)

		case "save":
			if current == nil {
				fmt.Println("Generate a level first.")
				continue
			}
			result, err := client.SaveLevel(ctx, current, rest)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			current.ID = result.ID
			if result.Updated {
				fmt.Printf("Updated level %s\n", result.ID)
			} else {
				fmt.Printf("Saved level %s\n", result.ID)
			}

		case "list":
			levels, err := client.ListLevels(ctx)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if len(levels) == 0 {
				fmt.Println("No saved levels.")
			}
			for _, level := range levels {
				fmt.Printf("%s  %s  %s\n", level.ID, level.CreatedAt.Format("2006-01-02 15:04"), level.Name)
			}

		case "show":
			level, err := client.GetLevel(ctx, rest)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if level == nil {
				fmt.Println("Level not found.")
				continue
			}
			printLevel(level)

		default:
			level, err := client.Generate(ctx, input)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			current = level
			printLevel(level)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func printLevel(level *backroom.Level) {
	if level.LevelNumber != nil {
		fmt.Printf("\n#%d ", *level.LevelNumber)
	} else {
		fmt.Println()
	}
	fmt.Println(level.Name)
	fmt.Printf("\n%s\n\nHazards:\n", level.VisualDescription)
	for _, hazard := range level.Hazards {
		fmt.Printf("  - %s\n", hazard)
	}
	fmt.Printf("\n%s\n\n%s\n", level.Lore, level.StoryHook)
	if level.ImageURL != "" {
		fmt.Printf("\nImage: %s\n", level.ImageURL)
	}
	if level.AuthorName != "" {
		fmt.Printf("By %s\n", level.AuthorName)
	}
}
