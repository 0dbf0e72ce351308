// Package client provides commands that call a running rpg-mechanics server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-mechanics/internal/handlers/mechanics/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the mechanics service",
	Long:  `Client commands call a running rpg-mechanics server over gRPC and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(calcPowerCmd)
	ClientCmd.AddCommand(calcTechniqueCmd)
	ClientCmd.AddCommand(calcItemCmd)
	ClientCmd.AddCommand(rarityCmd)
	ClientCmd.AddCommand(rollDamageCmd)

	// Saved builds
	ClientCmd.AddCommand(saveBuildCmd)
	ClientCmd.AddCommand(getBuildCmd)
	ClientCmd.AddCommand(listBuildsCmd)
	ClientCmd.AddCommand(deleteBuildCmd)
}

// createClient connects to the server
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// readInput decodes a JSON request file; "-" reads stdin
func readInput(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// call invokes method and prints the response as indented JSON
func call[O any](method string, in any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var out O
	if err := client.Call(ctx, method, in, &out); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
