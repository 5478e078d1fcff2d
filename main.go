package main

import (
	"fmt"
	"os"

	"github.com/23CSE311-SeeFood/seeFood-Backend/configs"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	v := configs.NewViper()

	rootCmd := &cobra.Command{
		Use:          "seefood",
		Short:        "seeFood campus canteen backend",
		Version:      Version,
		SilenceUsage: true,
	}

	serve, err := serveCmd(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd(v))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
