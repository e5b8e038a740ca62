package main

import (
	"fmt"

	"github.com/archaid/archaid/internal/sim"
	"github.com/spf13/cobra"
)

// getScenariosCommand returns the scenarios command
func getScenariosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the preset simulator failure scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range sim.ScenarioNames() {
				fmt.Println(name)
			}
		},
	}
}
