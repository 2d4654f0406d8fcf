package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eringen/notebook"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Prompt for a password and print its bcrypt hash for admin_password",
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return errors.New("hash-password needs an interactive terminal")
		}
		out := cmd.ErrOrStderr()

		fmt.Fprint(out, "Password: ")
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Fprint(out, "Confirm password: ")
		confirm, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("read password confirmation: %w", err)
		}
		if string(password) != string(confirm) {
			return errors.New("passwords do not match")
		}
		if len(password) < 8 {
			return errors.New("password must be at least 8 characters long")
		}

		hashed, err := notebook.HashPassword(string(password))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hashed)
		return nil
	},
}
