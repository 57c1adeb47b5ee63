package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/tix/internal/jira"
	"github.com/danielolaszy/tix/pkg/models"
)

const (
	// descriptionLimit is the character budget for the description body.
	descriptionLimit = 500
	// commentLimit is the character budget for each comment body.
	commentLimit = 200
	// maxComments is how many of the newest comments are shown with --full.
	maxComments = 5
)

var viewCmd = &cobra.Command{
	Use:   "view KEY",
	Short: "View detailed information about a ticket",
	Example: `  tix view PROJ-123
  tix view PROJ-123 --full
  tix view PROJ-123 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		full, err := cmd.Flags().GetBool("full")
		if err != nil {
			return err
		}
		jsonOutput, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		ticket, raw, err := client.GetTicketDetail(args[0], full)
		if err != nil {
			return err
		}

		if jsonOutput {
			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return fmt.Errorf("failed to format response: %w", err)
			}
			fmt.Println(out.String())
			return nil
		}

		renderTicket(os.Stdout, ticket, client.Site(), full)
		return nil
	},
}

// renderTicket writes the human-readable ticket view. Long text fields are
// truncated with an explicit marker; sections with no data are omitted.
func renderTicket(w io.Writer, ticket *models.Ticket, site string, full bool) {
	fmt.Fprintf(w, "\n📋 %s: %s\n", ticket.Key, ticket.Summary)
	fmt.Fprintln(w, strings.Repeat("=", 80))

	fmt.Fprintf(w, "\nStatus: %s\n", orUnknown(ticket.Status))
	fmt.Fprintf(w, "Type: %s\n", orUnknown(ticket.IssueType))
	fmt.Fprintf(w, "Priority: %s\n", orUnknown(ticket.Priority))

	assignee := ticket.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	fmt.Fprintf(w, "Assignee: %s\n", assignee)
	fmt.Fprintf(w, "Reporter: %s\n", orUnknown(ticket.Reporter))

	fmt.Fprintf(w, "Created: %s\n", formatDate(ticket.Created))
	fmt.Fprintf(w, "Updated: %s\n", formatDate(ticket.Updated))

	if len(ticket.Labels) > 0 {
		fmt.Fprintf(w, "Labels: %s\n", strings.Join(ticket.Labels, ", "))
	}
	if len(ticket.FixVersions) > 0 {
		fmt.Fprintf(w, "Fix Versions: %s\n", strings.Join(ticket.FixVersions, ", "))
	}
	if len(ticket.Components) > 0 {
		fmt.Fprintf(w, "Components: %s\n", strings.Join(ticket.Components, ", "))
	}

	renderDescription(w, ticket)

	if full {
		renderComments(w, ticket.Comments)
	}

	if len(ticket.Links) > 0 {
		fmt.Fprintln(w, "\nLinked Issues:")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, link := range ticket.Links {
			direction, peer := jira.LinkDirection(link)
			fmt.Fprintf(w, "  %s: %s - %s (%s)\n", direction, peer.Key, peer.Summary, peer.Status)
		}
	}

	if len(ticket.Subtasks) > 0 {
		fmt.Fprintf(w, "\nSubtasks (%d):\n", len(ticket.Subtasks))
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, subtask := range ticket.Subtasks {
			fmt.Fprintf(w, "  %s: %s (%s)\n", subtask.Key, subtask.Summary, subtask.Status)
		}
	}

	if ticket.Parent != nil {
		fmt.Fprintf(w, "\nParent: %s - %s\n", ticket.Parent.Key, ticket.Parent.Summary)
	}

	if len(ticket.Attachments) > 0 {
		fmt.Fprintf(w, "\nAttachments (%d):\n", len(ticket.Attachments))
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, att := range ticket.Attachments {
			fmt.Fprintf(w, "  %s (%.1f KB)\n", att.Filename, float64(att.Size)/1024)
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintf(w, "View in browser: https://%s/browse/%s\n\n", site, ticket.Key)
}

func renderDescription(w io.Writer, ticket *models.Ticket) {
	if ticket.RenderedDescription != "" {
		body, truncated := truncate(stripHTML(ticket.RenderedDescription), descriptionLimit)
		fmt.Fprintln(w, "\nDescription:")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		fmt.Fprintln(w, body)
		if truncated {
			fmt.Fprintln(w, "... (truncated)")
		}
		return
	}
	if ticket.Description != "" {
		body, truncated := truncate(ticket.Description, descriptionLimit)
		fmt.Fprintln(w, "\nDescription:")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		fmt.Fprintln(w, body)
		if truncated {
			fmt.Fprintln(w, "... (truncated)")
		}
	}
}

func renderComments(w io.Writer, comments []models.Comment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "\nComments: None")
		return
	}

	fmt.Fprintf(w, "\nComments (%d total):\n", len(comments))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	// Show the newest comments; the server returns them oldest first.
	start := 0
	if len(comments) > maxComments {
		start = len(comments) - maxComments
	}
	for i, comment := range comments[start:] {
		author := orUnknown(comment.Author)
		body := comment.Body
		if body == "" {
			body = "(empty)"
		}
		text, truncated := truncate(body, commentLimit)

		fmt.Fprintf(w, "\n%d. %s (%s):\n", i+1, author, formatDate(comment.Created))
		fmt.Fprintf(w, "   %s\n", text)
		if truncated {
			fmt.Fprintln(w, "   ... (truncated)")
		}
	}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML removes markup tags from server-rendered HTML for terminal
// display.
func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

// truncate limits s to the given number of characters and reports whether
// anything was cut.
func truncate(s string, limit int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}

// jiraTimeLayout is the timestamp format the API returns.
const jiraTimeLayout = "2006-01-02T15:04:05.000-0700"

// formatDate renders a server timestamp as "2006-01-02 15:04". Values that
// fail to parse are shown raw rather than dropped.
func formatDate(value string) string {
	if value == "" {
		return "Unknown"
	}
	for _, layout := range []string{jiraTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return value
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func init() {
	viewCmd.Flags().BoolP("full", "f", false, "Show all comments and details")
	viewCmd.Flags().BoolP("json", "j", false, "Output the raw JSON response")

	rootCmd.AddCommand(viewCmd)
}
