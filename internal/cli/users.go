package cli

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"

	"github.com/martijn/inkwell/internal/core/repository"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
	Long:  "Manage user accounts from the command line",
}

var usersAddCmd = &cobra.Command{
	Use:   "add <name> <email>",
	Short: "Add a new user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, email := args[0], args[1]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		// Prompt for password
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		if len(password) < 6 {
			return fmt.Errorf("password must be at least 6 characters")
		}

		_, err = services.AuthService.Register(cmd.Context(), name, email, string(password))
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				return fmt.Errorf("email already in use: %s", email)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User '%s' created successfully\n", email)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		users, err := services.UserRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCREATED AT")
		for _, user := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				user.ID,
				user.Name,
				user.Email,
				user.CreatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		w.Flush()

		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete a user and all their blogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		user, err := services.UserRepo.FindByEmail(cmd.Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("user not found: %s", email)
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		// Confirm deletion
		fmt.Printf("Delete user '%s' and all their blogs? (yes/no): ", email)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Cancelled")
			return nil
		}

		if err := services.UserRepo.Delete(cmd.Context(), user.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		fmt.Printf("User '%s' deleted successfully\n", email)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
