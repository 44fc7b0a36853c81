package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"library-catalog/internal/client"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage books",
}

var booksListPage int

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := client.NewBooksController(newClient())
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}
		if booksListPage > 1 {
			link, ok := openNumberedPage(ctrl.Meta, booksListPage)
			if !ok {
				return fmt.Errorf("no page %d", booksListPage)
			}
			if err := ctrl.OpenPage(cmd.Context(), link); err != nil {
				return err
			}
		}

		for _, b := range ctrl.Books {
			authorName := ""
			if b.Author != nil {
				authorName = b.Author.Name
			}
			fmt.Printf("%-6d %-32s %-16s %s\n", b.ID, b.Name, b.ISBN, authorName)
		}
		printPager(ctrl.Meta)
		return nil
	},
}

var booksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		ctrl := client.NewBookDetailController(newClient())
		if err := ctrl.Load(cmd.Context(), id); err != nil {
			return err
		}

		b := ctrl.Book
		fmt.Printf("ID:     %d\n", b.ID)
		fmt.Printf("Name:   %s\n", b.Name)
		fmt.Printf("ISBN:   %s\n", b.ISBN)
		if b.Author != nil {
			fmt.Printf("Author: %s (#%d)\n", b.Author.Name, b.Author.ID)
		}
		return nil
	},
}

var booksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := client.NewBooksController(newClient())
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		ctrl.OpenCreate()
		if err := runBookForm(&ctrl.Form, ctrl.AuthorOptions); err != nil {
			ctrl.CloseModal()
			return err
		}
		if err := ctrl.Submit(cmd.Context()); err != nil {
			return reportMutationError(err)
		}
		fmt.Println("Book created.")
		return nil
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		c := newClient()
		current, err := c.GetBook(cmd.Context(), id)
		if err != nil {
			return err
		}

		ctrl := client.NewBooksController(c)
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		ctrl.OpenEdit(*current)
		if err := runBookForm(&ctrl.Form, ctrl.AuthorOptions); err != nil {
			ctrl.CloseModal()
			return err
		}
		if err := ctrl.Submit(cmd.Context()); err != nil {
			return reportMutationError(err)
		}
		fmt.Println("Book updated.")
		return nil
	},
}

var booksDeleteYes bool

var booksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		ctrl := client.NewBooksController(newClient())
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		confirm := func() bool { return booksDeleteYes || confirmDelete("book", id) }
		if err := ctrl.Delete(cmd.Context(), id, confirm); err != nil {
			return reportMutationError(err)
		}
		fmt.Println("Book deleted.")
		return nil
	},
}

func runBookForm(form *client.BookForm, authors []client.Author) error {
	options := make([]huh.Option[int64], 0, len(authors))
	for _, a := range authors {
		options = append(options, huh.NewOption(a.Name, a.ID))
	}

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&form.Name),
			huh.NewInput().Title("ISBN").Value(&form.ISBN),
			huh.NewSelect[int64]().
				Title("Author").
				Options(options...).
				Value(&form.AuthorID),
		),
	)
	return f.Run()
}

func init() {
	booksListCmd.Flags().IntVar(&booksListPage, "page", 1, "page to open")
	booksDeleteCmd.Flags().BoolVarP(&booksDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	booksCmd.AddCommand(booksListCmd, booksGetCmd, booksCreateCmd,
		booksUpdateCmd, booksDeleteCmd)
	rootCmd.AddCommand(booksCmd)
}
