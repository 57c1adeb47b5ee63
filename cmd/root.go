// Package cmd provides the command-line interface for the tix tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tix",
	Short: "tix inspects and mutates Jira tickets from the command line",
	Long: `tix is a small CLI for working with Jira tickets over the REST API:
linking tickets together, moving them through their workflow, viewing
ticket detail, and verifying credentials.

Credentials are read from the environment:
  ATLASSIAN_EMAIL      Atlassian account email
  ATLASSIAN_API_TOKEN  API token from id.atlassian.com
  ATLASSIAN_SITE       Jira site hostname (default: yoursite.atlassian.net)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
