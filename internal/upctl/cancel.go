package upctl

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"uploadd/pkg/client"
)

func newCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <session-id>",
		Short: "Cancel a live upload session",
		Args:  cobra.ExactArgs(1),
		RunE:  runCancel,
	}

	return cmd
}

func runCancel(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	uploadClient, err := client.NewUploadClient(serverAddr)
	if err != nil {
		return err
	}
	defer uploadClient.Close()

	response, err := uploadClient.Cancel(context.Background(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to cancel session: %v", err)
	}

	if response.Ok {
		fmt.Printf("Session cancelled: %s\n", sessionID)
	}

	return nil
}
