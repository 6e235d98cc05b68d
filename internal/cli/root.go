package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"storeadmin/pkg/version"
)

var (
	flagConfig string
	flagPlain  bool
)

var rootCmd = &cobra.Command{
	Use:   "storeadmin",
	Short: "storeadmin: terminal back-office console",
	Long: `storeadmin is a terminal console for administering the store backend:
users, products, orders, and contact messages.

Resource commands open an interactive list screen on a terminal and fall
back to plain table output when piped or run with --plain.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := InitDependencies(flagConfig); err != nil {
			return err
		}
		if flagPlain {
			deps.Headless.ForceHeadless(true)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("storeadmin %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "plain table output, no interactive screens")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(newResourceCommand(userResource()))
	rootCmd.AddCommand(newResourceCommand(productResource()))
	rootCmd.AddCommand(newResourceCommand(orderResource()))
	rootCmd.AddCommand(newResourceCommand(contactResource()))
}
