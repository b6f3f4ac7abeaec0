// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/ui/tui"
	"github.com/toeirei/addressbook/util/mapst"
	"golang.org/x/term"
)

// runPager is a package-level variable so tests can replace the TUI pager.
var runPager = tui.Run

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func findRecord(b *book.AddressBook, name string) (*model.Record, error) {
	r, ok := b.Get(name)
	if !ok {
		return nil, errors.New(i18n.T("contact.not_found", name))
	}
	return r, nil
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> [phone...]",
		Short: "Create or replace a contact",
		Long: `Creates a contact with the given phone numbers. Phone numbers must be
exactly 9 digits. An existing contact with the same name is replaced.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birthday, _ := cmd.Flags().GetString("birthday")
			rec, err := model.NewRecord(args[0], birthday, args[1:]...)
			if err != nil {
				return err
			}
			err = withBook(cmd, true, func(b *book.AddressBook) error {
				b.AddRecord(rec)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.success", rec.Name()))
			return nil
		},
	}
	cmd.Flags().StringP("birthday", "b", "", "Birthday as "+model.BirthdayFormat)
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a contact",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withBook(cmd, true, func(b *book.AddressBook) error {
				if !b.Remove(args[0]) {
					return errors.New(i18n.T("contact.not_found", args[0]))
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("delete.success", args[0]))
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a contact and the days until its birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, false, func(b *book.AddressBook) error {
				r, err := findRecord(b, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, r.String())
				if days, ok := r.DaysToBirthday(now()); ok {
					fmt.Fprintln(out, i18n.T("show.days_to_birthday", days))
				} else {
					fmt.Fprintln(out, i18n.T("show.no_birthday"))
				}
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts page by page",
		Long: `Prints all contacts sorted by name, split into pages of --page-size
contacts. With --interactive on a terminal the pages are shown in a pager.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size := appConfig.PageSize
			if size < 1 {
				return errors.New(i18n.T("list.error_page_size", size))
			}
			interactive, _ := cmd.Flags().GetBool("interactive")

			return withBook(cmd, false, func(b *book.AddressBook) error {
				out := cmd.OutOrStdout()
				if b.Len() == 0 {
					fmt.Fprintln(out, i18n.T("list.empty"))
					return nil
				}
				total := b.PageCount(size)
				if interactive && isTerminal() {
					return runPager(b.Paginate(size), total)
				}
				i := 0
				for page := range b.Paginate(size) {
					i++
					fmt.Fprintln(out, i18n.T("list.page_header", i, total))
					fmt.Fprintln(out, page)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolP("interactive", "i", false, "Browse pages in a pager")
	return cmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find contacts by name, phone or birthday",
		Long: `Lists every contact whose name, phone numbers or birthday contain the
query. Matching is case sensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, false, func(b *book.AddressBook) error {
				out := cmd.OutOrStdout()
				found := b.Search(args[0])
				if len(found) == 0 {
					fmt.Fprintln(out, i18n.T("search.no_results", args[0]))
					return nil
				}

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tPHONES\tBIRTHDAY")
				for _, name := range mapst.SortedKeys(found) {
					r := found[name]
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name(), strings.Join(r.Phones(), ", "), r.Birthday())
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintln(out, i18n.T("search.count", len(found)))
				return nil
			})
		},
	}
}
