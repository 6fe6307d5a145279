package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := application.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if user != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd() *cobra.Command {
	var firstName, lastName, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account; a successful signup logs you in",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := application.Register(cmd.Context(), firstName, lastName, email, password)
			if err != nil {
				return err
			}
			if user != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. You are logged in.\n", user.FirstName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first", "", "first name")
	cmd.Flags().StringVar(&lastName, "last", "", "last name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (min 6 characters)")
	cmd.MarkFlagRequired("first")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
