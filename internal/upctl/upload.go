package upctl

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uploadd/pkg/client"
)

func newUploadCmd() *cobra.Command {
	var chunkSize int
	var wait bool

	cmd := &cobra.Command{
		Use:   "upload <token> <file>",
		Short: "Upload a file under a join token",
		Long: "Joins an upload session with the given token and streams the file in chunks. " +
			"With --wait the command holds the stream open until the session is consumed, " +
			"cancelled or times out; without it the session ends when the command exits.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(args[0], args[1], chunkSize, wait)
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 64*1024, "Chunk size in bytes")
	cmd.Flags().BoolVar(&wait, "wait", false, "Keep the session open until it is consumed or cancelled")

	return cmd
}

func runUpload(token, path string, chunkSize int, wait bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	uploadClient, err := client.NewUploadClient(serverAddr)
	if err != nil {
		return err
	}
	defer uploadClient.Close()

	stream, err := uploadClient.Join(context.Background(), token)
	if err != nil {
		return fmt.Errorf("failed to join session: %v", err)
	}

	fmt.Printf("Session: %s\n", stream.SessionID)
	fmt.Printf("Limit: %d bytes\n", stream.Limit)

	total, err := stream.SendFile(f, chunkSize)
	if err != nil {
		return fmt.Errorf("upload failed after %d bytes: %v", total, err)
	}

	fmt.Printf("Uploaded: %d bytes\n", total)

	if err := stream.Finish(); err != nil {
		return fmt.Errorf("failed to finish upload: %v", err)
	}

	if wait {
		fmt.Println("Waiting for session to resolve...")
		if err := stream.Wait(); err != nil {
			return fmt.Errorf("session ended with error: %v", err)
		}
		fmt.Println("Session resolved")
	}

	return nil
}
