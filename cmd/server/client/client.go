// Package client provides commands that exercise the sheet gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the sheet service",
	Long:  `Client commands call a running sheet server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Character commands
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(summaryCmd)
	ClientCmd.AddCommand(abilityCmd)
	ClientCmd.AddCommand(skillCmd)
	ClientCmd.AddCommand(exportCmd)

	// Dice commands
	ClientCmd.AddCommand(rollCmd)
	ClientCmd.AddCommand(checkCmd)
	ClientCmd.AddCommand(damageCmd)
	ClientCmd.AddCommand(logCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createSheetClient creates a sheet service client
func createSheetClient() (v1alpha1.SheetServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}
