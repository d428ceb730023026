package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emank/bookcatalog/internal/auth"
	"github.com/emank/bookcatalog/internal/config"
	"github.com/emank/bookcatalog/internal/database"
	"github.com/emank/bookcatalog/internal/database/users"
	"github.com/emank/bookcatalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "create-user":
		if err := runCreateUser(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runCreateUser provisions an account from the terminal, bypassing the
// registration page. Useful for seeding the first login.
func runCreateUser(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	username := fs.String("username", "", "Username (required)")
	email := fs.String("email", "", "Email address (required)")
	password := fs.String("password", "", "Password (required)")
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" || *email == "" || *password == "" {
		return fmt.Errorf("username, email and password are required")
	}

	cfg := config.NewConfig()
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	service := auth.NewService(users.NewRepository(db.DB), cfg.Auth)
	user, err := service.Register(auth.Registration{
		Username:  *username,
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (id=%d)\n", user.Username, user.ID)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve        Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  create-user  Create an account from the command line\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
