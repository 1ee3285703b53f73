package upctl

import (
	"os"

	"github.com/spf13/cobra"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "upctl",
	Short: "Upload daemon CLI client",
	Long:  "Command Line Interface to interact with the uploadd gRPC service",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultAddr := os.Getenv("UPLOADD_SERVER")
	if defaultAddr == "" {
		defaultAddr = "localhost:50061"
	}

	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", defaultAddr,
		"Server address in format host:port")

	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newConsumeCmd())
	rootCmd.AddCommand(newCancelCmd())
	rootCmd.AddCommand(newStatusCmd())
}
