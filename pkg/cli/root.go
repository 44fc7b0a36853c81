// Package cli implements the catalogctl command tree. Commands drive
// the view controllers in internal/client, so the terminal flows stay
// faithful to the browser client's behavior.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"library-catalog/internal/client"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Browse and edit the library catalog",
	Long: `catalogctl is a terminal client for the library catalog API.

It lists, creates, edits, and deletes authors and books through the
same resource contract the browser client uses.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api",
		"http://localhost:8080/api/v1", "catalog API base URL")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() *client.Client {
	return client.New(apiURL)
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// printPager renders the pager line under a listing, with the HTML
// entities in the labels decoded for the terminal.
func printPager(meta *client.Meta) {
	if meta == nil {
		return
	}

	from, to := 0, 0
	if meta.From != nil {
		from = *meta.From
	}
	if meta.To != nil {
		to = *meta.To
	}
	fmt.Printf("Showing %d-%d of %d (page %d/%d)\n",
		from, to, meta.Total, meta.CurrentPage, meta.LastPage)

	for _, link := range meta.Links {
		marker := " "
		if link.Active {
			marker = "*"
		}
		if link.URL == nil {
			marker = "-"
		}
		fmt.Printf("  [%s] %s\n", marker, link.DisplayLabel())
	}
}

// openNumberedPage walks the controller to a numbered page through the
// server-issued links, never by constructing a URL.
func openNumberedPage(meta *client.Meta, page int) (client.Link, bool) {
	if meta == nil {
		return client.Link{}, false
	}
	label := strconv.Itoa(page)
	for _, link := range meta.Links {
		if link.Label == label {
			return link, true
		}
	}
	return client.Link{}, false
}
