// cmd/ideactl/main.go
//
// ideactl is the operational companion to the API server: it applies the
// database schema and seeds administrative accounts.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/upstartlab/ideahub/internal/auth"
	"github.com/upstartlab/ideahub/internal/config"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	adminCmd.AddCommand(adminCreateCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ideactl",
	Short: "ideactl manages the IdeaHub database",
	Long:  `ideactl applies the IdeaHub schema and manages administrative accounts.`,
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS citext`,
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		username citext NOT NULL UNIQUE,
		email citext UNIQUE,
		display_name text,
		department text,
		role text NOT NULL DEFAULT 'user',
		avatar_url text,
		password_hash text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ideas (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title text NOT NULL,
		description text NOT NULL,
		category text NOT NULL,
		status text NOT NULL DEFAULT 'submitted',
		priority text,
		department text,
		tags text[],
		impact text,
		inspiration text,
		similar_solutions text,
		admin_notes text,
		attachment_url text,
		media_urls jsonb,
		votes integer NOT NULL DEFAULT 0 CHECK (votes >= 0),
		submitted_by_id uuid NOT NULL REFERENCES users(id),
		assigned_to_id uuid REFERENCES users(id),
		assigned_role text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		idea_id uuid NOT NULL REFERENCES ideas(id) ON DELETE CASCADE,
		user_id uuid NOT NULL REFERENCES users(id),
		content text NOT NULL,
		parent_id uuid REFERENCES comments(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ideas_status ON ideas(status)`,
	`CREATE INDEX IF NOT EXISTS idx_ideas_submitted_by ON ideas(submitted_by_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_idea ON comments(idea_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_id)`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Apply the IdeaHub schema. Statements are idempotent and safe to re-run.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		conn, err := connect(ctx)
		if err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		defer conn.Close(ctx)

		for i, stmt := range schemaStatements {
			if verbose {
				fmt.Printf("applying statement %d/%d\n", i+1, len(schemaStatements))
			}
			if _, err := conn.Exec(ctx, stmt); err != nil {
				log.Fatalf("Failed to apply schema: %v", err)
			}
		}

		fmt.Println("Schema is up to date")
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrative accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create [username] [password]",
	Short: "Create an admin account",
	Long:  `Create an account with the admin role, or promote the username if it already exists.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username, password := args[0], args[1]

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		conn, err := connect(ctx)
		if err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		defer conn.Close(ctx)

		hash, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO users (username, password_hash, role)
			VALUES ($1, $2, 'admin')
			ON CONFLICT (username)
			DO UPDATE SET role = 'admin', password_hash = EXCLUDED.password_hash, updated_at = now()`,
			username, hash,
		)
		if err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}

		fmt.Printf("Admin account %q is ready\n", username)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ideactl v0.3.0")
	},
}

func connect(ctx context.Context) (*pgx.Conn, error) {
	connString := dbConnString
	if connString == "" {
		cfg := config.Load()
		connString = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
		)
	}
	return pgx.Connect(ctx, connString)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
