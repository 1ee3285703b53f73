package upctl

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uploadd/pkg/client"
)

func newConsumeCmd() *cobra.Command {
	var name string
	var mediaType string
	var clientRef string

	cmd := &cobra.Command{
		Use:   "consume <session-id>",
		Short: "Take ownership of a completed upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsume(args[0], name, mediaType, clientRef)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "File name to record with the handoff")
	cmd.Flags().StringVar(&mediaType, "media-type", "application/octet-stream", "Media type to record with the handoff")
	cmd.Flags().StringVar(&clientRef, "ref", "", "Opaque client reference")

	return cmd
}

func runConsume(sessionID, name, mediaType, clientRef string) error {
	uploadClient, err := client.NewUploadClient(serverAddr)
	if err != nil {
		return err
	}
	defer uploadClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := uploadClient.Consume(ctx, sessionID, name, mediaType, clientRef)
	if err != nil {
		return fmt.Errorf("failed to consume session: %v", err)
	}

	fmt.Printf("File handed off:\n")
	fmt.Printf("Path: %s\n", response.Path)
	fmt.Printf("Size: %d bytes\n", response.Size)
	if response.Name != "" {
		fmt.Printf("Name: %s\n", response.Name)
	}
	fmt.Printf("MediaType: %s\n", response.MediaType)

	return nil
}
