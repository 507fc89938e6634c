// internal/commands/show_config.go
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/careerpath/internal/appconfig"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings after the config file, .env, environment variables and flags have been merged.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Endpoint:     viper.GetString("endpoint"),
			Model:        viper.GetString("model"),
			Preset:       viper.GetString("preset"),
			Debug:        viper.GetBool("debug"),
			JSONMode:     viper.GetBool("jsonMode"),
			TUI:          viper.GetBool("tui"),
			StrictSchema: viper.GetBool("strictSchema"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
