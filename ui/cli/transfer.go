// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/i18n"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the address book to a book file",
		Long: `Writes every contact of the configured store to a zstd-compressed
book file, replacing the file if it exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			err := withBook(cmd, false, func(b *book.AddressBook) error {
				n = b.Len()
				return b.Save(args[0])
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("export.success", n, args[0]))
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load contacts from a book file",
		Long: `Reads a book file written by export and stores its contacts. By default
the stored book is replaced. With --merge the imported contacts are added
to the stored ones, replacing contacts of the same name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merge, _ := cmd.Flags().GetBool("merge")
			src, err := book.Load(args[0])
			if err != nil {
				return err
			}

			if merge {
				err = withBook(cmd, true, func(b *book.AddressBook) error {
					for _, r := range src.Records() {
						b.AddRecord(r)
					}
					return nil
				})
			} else {
				err = appStore.Save(cmd.Context(), src)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("import.success", src.Len(), args[0]))
			return nil
		},
	}
	cmd.Flags().Bool("merge", false, "Merge into the stored book instead of replacing it")
	return cmd
}
