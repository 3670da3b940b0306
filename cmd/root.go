/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorbabel/color"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorbabel",
	Short: "Quickly translate between different color representations",
	Long: `colorbabel translates color information between several types.

Colors may be given as hex codes ('#ff8800'), functional strings
('rgb(255, 136, 0)', 'hsl(30, 100%, 50%)', 'husl(...)') or CSS3 color
names ('dodgerblue'). They can be converted to any other representation,
blended into a colormap and resampled, extracted from an image, or
exported through a template.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		fmt.Println(e)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorbabel.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			fmt.Println(e)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".colorbabel")
	}

	viper.SetDefault("to", "hex")
	viper.SetDefault("bins", 9)
	viper.SetDefault("num", 16)

	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// swatch prints text to the terminal in the given color
func swatch(c color.Color, text string) {
	r, g, b := c.RGB255()
	fmt.Printf("\033[38;2;%d;%d;%dm%s\033[0m\n", r, g, b, text)
}
