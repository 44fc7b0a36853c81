package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"library-catalog/internal/client"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Manage authors",
}

var authorsListPage int

var authorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List authors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := client.NewAuthorsController(newClient())
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}
		if authorsListPage > 1 {
			link, ok := openNumberedPage(ctrl.Meta, authorsListPage)
			if !ok {
				return fmt.Errorf("no page %d", authorsListPage)
			}
			if err := ctrl.OpenPage(cmd.Context(), link); err != nil {
				return err
			}
		}

		for _, a := range ctrl.Authors {
			fmt.Printf("%-6d %-28s %-8s %-4d %-16s %-14s %d\n",
				a.ID, a.Name, a.Gender, a.Age, a.Country, a.Genre, a.BookCount)
		}
		printPager(ctrl.Meta)
		return nil
	},
}

var authorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		ctrl := client.NewAuthorDetailController(newClient())
		if err := ctrl.Load(cmd.Context(), id); err != nil {
			return err
		}

		a := ctrl.Author
		fmt.Printf("ID:      %d\n", a.ID)
		fmt.Printf("Name:    %s\n", a.Name)
		fmt.Printf("Gender:  %s\n", a.Gender)
		fmt.Printf("Age:     %d\n", a.Age)
		fmt.Printf("Country: %s\n", a.Country)
		fmt.Printf("Genre:   %s\n", a.Genre)
		fmt.Printf("Books:   %d\n", a.BookCount)
		return nil
	},
}

var authorsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an author",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := client.NewAuthorsController(newClient())
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		ctrl.OpenCreate()
		if err := runAuthorForm(&ctrl.Form); err != nil {
			ctrl.CloseModal()
			return err
		}
		if err := ctrl.Submit(cmd.Context()); err != nil {
			return reportMutationError(err)
		}
		fmt.Println("Author created.")
		return nil
	},
}

var authorsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		c := newClient()
		current, err := c.GetAuthor(cmd.Context(), id)
		if err != nil {
			return err
		}

		ctrl := client.NewAuthorsController(c)
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		ctrl.OpenEdit(*current)
		if err := runAuthorForm(&ctrl.Form); err != nil {
			ctrl.CloseModal()
			return err
		}
		if err := ctrl.Submit(cmd.Context()); err != nil {
			return reportMutationError(err)
		}
		fmt.Println("Author updated.")
		return nil
	},
}

var authorsDeleteYes bool

var authorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		ctrl := client.NewAuthorsController(newClient())
		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		confirm := func() bool { return authorsDeleteYes || confirmDelete("author", id) }
		if err := ctrl.Delete(cmd.Context(), id, confirm); err != nil {
			return reportMutationError(err)
		}
		fmt.Println("Author deleted.")
		return nil
	},
}

func runAuthorForm(form *client.AuthorForm) error {
	age := strconv.Itoa(form.Age)
	if form.Age == 0 {
		age = ""
	}

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&form.Name),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Male", "male"),
					huh.NewOption("Female", "female"),
				).
				Value(&form.Gender),
			huh.NewInput().Title("Age").Value(&age),
			huh.NewInput().Title("Country").Value(&form.Country),
			huh.NewInput().Title("Genre").Value(&form.Genre),
		),
	)
	if err := f.Run(); err != nil {
		return err
	}

	// Non-numeric input is sent as zero so the server reports it the
	// same way it reports a missing age.
	form.Age, _ = strconv.Atoi(age)
	return nil
}

func confirmDelete(kind string, id int64) bool {
	confirmed := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete %s %d?", kind, id)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return err == nil && confirmed
}

// reportMutationError prints field errors when the server rejected the
// payload and passes everything else through.
func reportMutationError(err error) error {
	var verr *client.ValidationError
	if errors.As(err, &verr) {
		fmt.Println(verr.Message)
		for _, field := range verr.Fields() {
			for _, msg := range verr.Errors[field] {
				fmt.Printf("  %s: %s\n", field, msg)
			}
		}
		return fmt.Errorf("validation failed")
	}
	return err
}

func init() {
	authorsListCmd.Flags().IntVar(&authorsListPage, "page", 1, "page to open")
	authorsDeleteCmd.Flags().BoolVarP(&authorsDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	authorsCmd.AddCommand(authorsListCmd, authorsGetCmd, authorsCreateCmd,
		authorsUpdateCmd, authorsDeleteCmd)
	rootCmd.AddCommand(authorsCmd)
}
