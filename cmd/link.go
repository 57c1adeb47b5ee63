package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/tix/internal/jira"
	"github.com/danielolaszy/tix/pkg/models"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage links between tickets",
	Long: `Create, list, and remove typed links between Jira tickets.

The source ticket acts on the target: "tix link create PROJ-123 PROJ-456
Blocks" records that PROJ-123 blocks PROJ-456. Link type names are matched
case-insensitively, by substring, and against the direction labels, so
"blocks" and "blocked by" both find the "Blocks" type.`,
}

var linkCreateCmd = &cobra.Command{
	Use:   "create SOURCE TARGET TYPE",
	Short: "Link two tickets",
	Example: `  tix link create PROJ-123 PROJ-456 "Blocks"
  tix link create PROJ-123 PROJ-456 Relates --comment "split from spike"
  tix link create PROJ-123 PROJ-456 Blocks --dry-run`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		comment, err := cmd.Flags().GetString("comment")
		if err != nil {
			return err
		}
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		result, err := client.ExecuteLink(jira.LinkRequest{
			Source:   args[0],
			Target:   args[1],
			TypeName: args[2],
			Comment:  comment,
			DryRun:   dryRun,
		})
		if err != nil {
			var notFound *jira.LinkTypeNotFoundError
			if errors.As(err, &notFound) {
				fmt.Printf("Unknown link type %q\n\n", notFound.Query)
				printLinkTypes(notFound.Available)
			}
			return err
		}

		fmt.Printf("\nSource: %s: %s\n", result.Source.Key, result.Source.Summary)
		fmt.Printf("Target: %s: %s\n", result.Target.Key, result.Target.Summary)
		fmt.Printf("\nLink Type: %s\n", result.Type.Name)
		fmt.Printf("  %s %s %s\n", result.Source.Key, result.Type.Outward, result.Target.Key)
		fmt.Printf("  %s %s %s\n", result.Target.Key, result.Type.Inward, result.Source.Key)

		if comment != "" {
			fmt.Printf("\nComment: %s\n", comment)
		}

		if !result.Created {
			fmt.Println("\nDry run: no changes made")
			return nil
		}

		fmt.Println("\nLink created successfully")
		return nil
	},
}

var linkListCmd = &cobra.Command{
	Use:     "list KEY",
	Short:   "Show existing links for a ticket",
	Example: `  tix link list PROJ-123`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		ticket, err := client.GetTicket(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("\n%s: %s\n", ticket.Key, ticket.Summary)
		fmt.Println(strings.Repeat("=", 60))

		if len(ticket.Links) == 0 {
			fmt.Println("  No links found")
			return nil
		}

		fmt.Printf("\nLinks (%d):\n", len(ticket.Links))
		for _, link := range ticket.Links {
			direction, peer := jira.LinkDirection(link)
			fmt.Printf("\n  [%s] %s:\n", link.ID, direction)
			fmt.Printf("    %s: %s\n", peer.Key, peer.Summary)
			fmt.Printf("    Status: %s\n", peer.Status)
		}
		return nil
	},
}

var linkRemoveCmd = &cobra.Command{
	Use:     "remove KEY LINK_ID",
	Short:   "Remove a link by its ID",
	Example: `  tix link remove PROJ-123 12345`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		removed, err := client.RemoveLink(args[0], args[1])
		if err != nil {
			var notFound *jira.LinkNotFoundError
			if errors.As(err, &notFound) {
				fmt.Printf("Link ID %s not found on %s\n", notFound.LinkID, notFound.Key)
				fmt.Println("\nUse \"tix link list\" to see existing links and their IDs")
			}
			return err
		}

		direction, peer := jira.LinkDirection(*removed)
		fmt.Printf("\nRemoved link from %s:\n", args[0])
		fmt.Printf("  Link ID: %s\n", removed.ID)
		fmt.Printf("  Type: %s\n", removed.Type.Name)
		fmt.Printf("  %s %s\n", direction, peer.Key)
		fmt.Println("\nLink removed successfully")
		return nil
	},
}

var linkTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List available link types",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		types, err := client.GetLinkTypes()
		if err != nil {
			return err
		}

		printLinkTypes(types)
		return nil
	},
}

// printLinkTypes renders the catalog, shared by "link types" and the
// unknown-type error path.
func printLinkTypes(types []models.LinkType) {
	fmt.Println("\nAvailable Link Types:")
	fmt.Println(strings.Repeat("=", 60))

	if len(types) == 0 {
		fmt.Println("  (No link types available)")
		return
	}

	for _, lt := range types {
		fmt.Printf("\n  %s (ID: %s)\n", lt.Name, lt.ID)
		fmt.Printf("    Outward: %q\n", lt.Outward)
		fmt.Printf("    Inward:  %q\n", lt.Inward)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Usage: tix link create SOURCE TARGET \"Link Type Name\"")
	fmt.Println("Example: tix link create PROJ-123 PROJ-456 \"Blocks\"")
	fmt.Println("         (PROJ-123 blocks PROJ-456)")
}

func init() {
	linkCreateCmd.Flags().StringP("comment", "c", "", "Add a comment when creating the link")
	linkCreateCmd.Flags().BoolP("dry-run", "n", false, "Show what would happen without making changes")

	linkCmd.AddCommand(linkCreateCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkRemoveCmd)
	linkCmd.AddCommand(linkTypesCmd)
	rootCmd.AddCommand(linkCmd)
}
