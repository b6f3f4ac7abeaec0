// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/model"
)

// clipboardWrite is a package-level variable so tests can avoid touching the
// system clipboard.
var clipboardWrite = clipboard.WriteAll

// editRecord loads the book, applies fn to the named contact, saves the book
// and prints the contact's phones.
func editRecord(cmd *cobra.Command, name string, fn func(r *model.Record) error) error {
	var phones []string
	err := withBook(cmd, true, func(b *book.AddressBook) error {
		r, err := findRecord(b, name)
		if err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
		phones = r.Phones()
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.T("phone.updated", name, strings.Join(phones, ", ")))
	return nil
}

func newPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Manage the phone numbers of a contact",
	}

	addCmd := &cobra.Command{
		Use:   "add <name> <phone...>",
		Short: "Add phone numbers",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRecord(cmd, args[0], func(r *model.Record) error {
				return r.AddPhone(args[1:]...)
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove <name> <phone...>",
		Aliases: []string{"rm"},
		Short:   "Remove phone numbers",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRecord(cmd, args[0], func(r *model.Record) error {
				return r.RemovePhone(args[1:]...)
			})
		},
	}

	changeCmd := &cobra.Command{
		Use:   "change <name> <old> <new>",
		Short: "Replace one phone number with another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRecord(cmd, args[0], func(r *model.Record) error {
				return r.ChangePhone(args[1], args[2])
			})
		},
	}

	copyCmd := &cobra.Command{
		Use:   "copy <name>",
		Short: "Copy the first phone number to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, false, func(b *book.AddressBook) error {
				r, err := findRecord(b, args[0])
				if err != nil {
					return err
				}
				phones := r.Phones()
				if len(phones) == 0 {
					return errors.New(i18n.T("phone.none", args[0]))
				}
				if err := clipboardWrite(phones[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("phone.copied", phones[0]))
				return nil
			})
		},
	}

	cmd.AddCommand(addCmd, removeCmd, changeCmd, copyCmd)
	return cmd
}

func newBirthdayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthday",
		Short: "Set or clear the birthday of a contact",
	}

	setBirthday := func(cmd *cobra.Command, name, value string) error {
		var shown string
		err := withBook(cmd, true, func(b *book.AddressBook) error {
			r, err := findRecord(b, name)
			if err != nil {
				return err
			}
			r.SetBirthday(value)
			shown = r.Birthday().String()
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("birthday.updated", name, shown))
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <name> <date>",
			Short: "Set the birthday (" + model.BirthdayFormat + ")",
			Long: `Sets the birthday of a contact. A date that is not in
YYYY-MM-DD form is logged as a warning and leaves the contact without a birthday.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setBirthday(cmd, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "clear <name>",
			Short: "Remove the birthday",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setBirthday(cmd, args[0], "")
			},
		},
	)
	return cmd
}
