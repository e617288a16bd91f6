package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vastra",
	Short: "Vastra — mock storefront CLI",
	Long:  "Vastra is a mock e-commerce storefront backed by JSON fixtures and a local key-value store. Use this CLI to serve it and manage its data.",
}

func init() {
	// Server
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Data
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(fixturesVerifyCmd)
	rootCmd.AddCommand(cartShowCmd)
}
