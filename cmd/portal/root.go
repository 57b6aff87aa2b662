package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portal",
	Short:         "Consultant portal backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}
