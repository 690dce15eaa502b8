package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dompet/dompet/internal/dashboard"
	"github.com/dompet/dompet/internal/infrastructure/config"
	"github.com/dompet/dompet/internal/infrastructure/postgres"
	"github.com/dompet/dompet/internal/money"
)

const watchInterval = 10 * time.Second

var (
	baseURL string
	timeout time.Duration
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dompet-cli",
		Short:         "Dompet CLI tool",
		Long:          `A terminal dashboard for the dompet finance tracker API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:5000", "Base URL of the dompet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", dashboard.DefaultTimeout, "Request timeout")

	rootCmd.AddCommand(dashboardCmd(), transactionsCmd(), healthCmd(), migrateCmd())
	return rootCmd
}

func newClient() *dashboard.Client {
	return dashboard.NewClient(baseURL, timeout)
}

func dashboardCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, the 7-day chart and recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			out := cmd.OutOrStdout()

			if !watch {
				return showDashboard(cmd.Context(), client, out)
			}

			ticker := time.NewTicker(watchInterval)
			defer ticker.Stop()

			for {
				// Clear screen
				fmt.Fprint(out, "\033[H\033[2J")
				if err := showDashboard(cmd.Context(), client, out); err != nil {
					fmt.Fprintf(out, "Gagal memuat data dashboard: %v\n", err)
				}

				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Refresh every 10 seconds")
	return cmd
}

func showDashboard(ctx context.Context, client *dashboard.Client, out io.Writer) error {
	d, err := client.Dashboard(ctx)
	if err != nil {
		return err
	}

	dashboard.Render(out, d)
	return nil
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List every transaction, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := newClient().Transactions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Belum ada transaksi")
				return nil
			}

			var total decimal.Decimal
			for i := range records {
				fmt.Fprintln(out, dashboard.RecordLine(&records[i]))

				amount, err := decimal.NewFromString(records[i].Amount)
				if err != nil {
					continue
				}
				if records[i].Type == "keluar" {
					amount = amount.Neg()
				}
				total = total.Add(amount)
			}

			fmt.Fprintf(out, "\n%d transaksi, saldo %s\n", len(records), money.Rupiah(total))
			return nil
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newClient().Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check FAILED: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n%s\n", h.Status, h.Message)
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL (defaults to DATABASE_URL or .env)")

	resolveURL := func() (string, error) {
		if databaseURL != "" {
			return databaseURL, nil
		}
		cfg, err := config.Load()
		if err != nil {
			return "", fmt.Errorf("load configuration: %w", err)
		}
		return cfg.DatabaseURL, nil
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := resolveURL()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrations(url); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := resolveURL()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrationsDown(url); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Last migration rolled back")
			return nil
		},
	}

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}
