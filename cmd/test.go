package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/tix/internal/config"
	"github.com/danielolaszy/tix/internal/jira"
	"github.com/danielolaszy/tix/internal/logging"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Verify Jira API credentials",
	Long: `Verify that API token authentication works by calling the
current-user endpoint and reporting the authenticated identity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Testing Jira API connection...")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Println("\nRequired environment variables:")
			fmt.Println("  export ATLASSIAN_EMAIL='your.email@company.com'")
			fmt.Println("  export ATLASSIAN_API_TOKEN='ATATT...'")
			fmt.Println("\nTo generate an API token:")
			fmt.Println("  1. Visit: https://id.atlassian.com/manage-profile/security/api-tokens")
			fmt.Println("  2. Create a token and copy it (shown only once)")
			return err
		}

		fmt.Printf("Email: %s\n", cfg.Atlassian.Email)
		fmt.Printf("Token: %s\n", logging.MaskSensitive(cfg.Atlassian.APIToken))
		fmt.Printf("Site:  %s\n\n", cfg.Atlassian.Site)

		client := jira.NewClientWithConfig(cfg)

		user, err := client.Myself()
		if err != nil {
			var reqErr *jira.RequestError
			if errors.As(err, &reqErr) {
				switch reqErr.StatusCode {
				case http.StatusUnauthorized:
					fmt.Println("❌ Authentication failed. Please check:")
					fmt.Println("  1. API token is correct and not expired")
					fmt.Println("  2. Email matches the account that created the token")
					fmt.Println("  3. Token has not been revoked")
					fmt.Println("\nTo create a new token:")
					fmt.Println("  https://id.atlassian.com/manage-profile/security/api-tokens")
				case http.StatusForbidden:
					fmt.Println("❌ Permission denied. Your account may not have API access.")
				case http.StatusNotFound:
					fmt.Printf("❌ Site not found. Check that %q is correct.\n", cfg.Atlassian.Site)
				default:
					fmt.Printf("❌ Request failed: %v\n", reqErr)
				}
			} else {
				fmt.Printf("❌ Connection error. Check that %q is accessible.\n", cfg.Atlassian.Site)
			}
			return err
		}

		fmt.Println("✅ Connection successful!")
		fmt.Printf("\nUser: %s\n", user.DisplayName)
		fmt.Printf("Account ID: %s\n", user.AccountID)
		fmt.Printf("Email: %s\n", user.EmailAddress)
		fmt.Printf("Active: %t\n", user.Active)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
