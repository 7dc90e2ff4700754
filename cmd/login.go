package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginEmail    string
	signupAge     int
	signupGender  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and provision a local account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" {
			return fmt.Errorf("--email is required")
		}
		if loginUsername == "" {
			loginUsername = "Shawn"
		}

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		user, err := app.auth.Login(loginUsername, loginEmail)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
		fmt.Printf("Diamonds: %d\n", user.Diamonds)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" || loginEmail == "" {
			return fmt.Errorf("--username and --email are required")
		}

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		user, err := app.auth.SignUp(cmd.Context(), loginUsername, loginEmail, signupAge, signupGender)
		if err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}

		fmt.Printf("Welcome, %s! Your account starts with %d diamonds.\n", user.Username, user.Diamonds)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the local account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		app.auth.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Display name")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&loginUsername, "username", "", "Display name")
	signupCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	signupCmd.Flags().IntVar(&signupAge, "age", 18, "Age")
	signupCmd.Flags().StringVar(&signupGender, "gender", "female", "Gender (male or female)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
}
