package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	token   string
	timeout time.Duration
	jsonOut bool
)

// Indirection point for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "hrm-cli",
		Short: "HRM ledger CLI tool",
		Long:  `A command line interface for the HRM resource ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the HRM API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("HRM_TOKEN"), "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print raw JSON responses")

	resourcesCmd := &cobra.Command{
		Use:   "resources",
		Short: "Resource directory operations",
	}
	resourcesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all resources with balances",
		Run: func(cmd *cobra.Command, args []string) {
			listResources()
		},
	})
	rootCmd.AddCommand(resourcesCmd)

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Verify stored balances against the movement ledger",
		Run: func(cmd *cobra.Command, args []string) {
			verifyLedger()
		},
	})
	rootCmd.AddCommand(ledgerCmd)

	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func listResources() {
	body := getJSON("/api/v1/resources")
	if jsonOut {
		printRaw(body)
		return
	}

	var result struct {
		Resources []struct {
			Slug           string  `json:"slug"`
			Name           string  `json:"name"`
			CurrentBalance float64 `json:"current_balance"`
			Status         string  `json:"status"`
			MovementCount  int64   `json:"movement_count"`
		} `json:"resources"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-24s %-32s %12s %10s %10s\n", "SLUG", "NAME", "BALANCE", "STATUS", "MOVEMENTS")
	for _, r := range result.Resources {
		fmt.Printf("%-24s %-32s %12.2f %10s %10d\n",
			truncate(r.Slug, 24),
			truncate(r.Name, 32),
			r.CurrentBalance,
			r.Status,
			r.MovementCount,
		)
	}
	fmt.Printf("Total: %d\n", result.Total)
}

func verifyLedger() {
	body := getJSON("/api/v1/resources/consistency")
	if jsonOut {
		printRaw(body)
		return
	}

	var result struct {
		Consistent bool `json:"consistent"`
		Drift      []struct {
			Slug     string  `json:"slug"`
			Stored   float64 `json:"stored"`
			Computed float64 `json:"computed"`
		} `json:"drift"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if result.Consistent {
		fmt.Println("Ledger verification PASSED")
		return
	}

	fmt.Println("Ledger verification FAILED")
	for _, d := range result.Drift {
		fmt.Printf("  %s: stored=%.2f computed=%.2f\n", d.Slug, d.Stored, d.Computed)
	}
	os.Exit(1)
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Hash a password for seeding user records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}

func printRaw(body []byte) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	printJSON(v)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
