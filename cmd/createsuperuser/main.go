package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"recipebox/internal/config"
	"recipebox/internal/database"
	"recipebox/internal/logger"
	"recipebox/internal/services"

	"golang.org/x/term"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("createsuperuser error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	email, password, err := prompt()
	if err != nil {
		return err
	}

	userService := services.NewUserService(dbManager.DB(), appConfig.BcryptCost)
	user, err := userService.CreateSuperuser(email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Superuser %s created (id=%d)\n", user.Email, user.ID)
	return nil
}

// prompt reads the email from stdin and the password twice without echo.
func prompt() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("failed to read email: %w", err)
	}
	email = strings.TrimSpace(email)

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Password (again): ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", "", fmt.Errorf("passwords do not match")
	}

	return email, string(password), nil
}
