package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/tix/internal/jira"
	"github.com/danielolaszy/tix/pkg/models"
)

var transitionCmd = &cobra.Command{
	Use:   "transition KEY [STATUS]",
	Short: "Move a ticket to a new workflow status",
	Long: `Transition a Jira ticket to a new status.

The status name is matched case-insensitively (and by substring) against
the transitions available from the ticket's current state. The reported
result is the status the server actually landed on, which can differ from
the requested name when the workflow maps it elsewhere.`,
	Example: `  tix transition PROJ-123 "In Progress"
  tix transition PROJ-123 Done --dry-run
  tix transition PROJ-123 --list`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := cmd.Flags().GetBool("list")
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

		key := args[0]

		if list {
			return listTransitions(client, key)
		}
		if len(args) < 2 {
			return fmt.Errorf("status required (or use --list)")
		}

		result, err := client.ExecuteTransition(jira.TransitionRequest{
			Key:    key,
			Status: args[1],
			DryRun: dryRun,
		})
		if err != nil {
			var notFound *jira.TransitionNotFoundError
			if errors.As(err, &notFound) {
				fmt.Printf("❌ Cannot transition %s to %q\n", notFound.Key, notFound.Query)
				fmt.Println("\nAvailable transitions:")
				printTransitions(notFound.Available)
			}
			return err
		}

		fmt.Printf("\n📋 %s: %s\n", result.Key, result.Summary)
		fmt.Printf("Current Status: %s\n", result.Before)

		if !result.Applied {
			fmt.Printf("\n🔍 Dry run: would transition to %q\n", result.Transition.To)
			fmt.Printf("   Using transition: %s (ID: %s)\n", result.Transition.Name, result.Transition.ID)
			return nil
		}

		fmt.Printf("✅ Success! Status: %s → %s\n", result.Before, result.After)
		return nil
	},
}

// listTransitions prints the ticket's current status and the transitions
// legal from it.
func listTransitions(client *jira.Client, key string) error {
	ticket, err := client.GetTicket(key)
	if err != nil {
		return err
	}

	fmt.Printf("\n📋 %s: %s\n", ticket.Key, ticket.Summary)
	fmt.Printf("Current Status: %s\n", ticket.Status)
	fmt.Println("\nAvailable Transitions:")

	transitions, err := client.GetTransitions(key)
	if err != nil {
		return err
	}

	if len(transitions) == 0 {
		fmt.Println("  (No transitions available)")
		return nil
	}

	for i, transition := range transitions {
		fmt.Printf("  %d. %s → %s\n", i+1, transition.Name, transition.To)
	}
	return nil
}

func printTransitions(transitions []models.Transition) {
	for _, transition := range transitions {
		fmt.Printf("  - %s → %s\n", transition.Name, transition.To)
	}
}

func init() {
	transitionCmd.Flags().BoolP("list", "l", false, "List available transitions")
	transitionCmd.Flags().BoolP("dry-run", "n", false, "Show what would happen without making changes")

	rootCmd.AddCommand(transitionCmd)
}
