package upctl

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uploadd/pkg/client"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <session-id>",
		Short: "Get the progress of a live upload session",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	uploadClient, err := client.NewUploadClient(serverAddr)
	if err != nil {
		return err
	}
	defer uploadClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := uploadClient.Status(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session status: %v", err)
	}

	fmt.Printf("Session: %s\n", response.SessionId)
	fmt.Printf("Owner: %s\n", response.Owner)
	fmt.Printf("Uploaded: %d / %d bytes\n", response.Uploaded, response.Limit)
	fmt.Printf("Complete: %v\n", response.Complete)

	return nil
}
