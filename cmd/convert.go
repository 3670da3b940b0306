package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorbabel/color"
)

var (
	to  string
	all bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert COLOR...",
	Short: "Translate colors into another representation",
	Long: `Translate colors into another representation, e.g.

  colorbabel convert --to hsl '#1e90ff'
  colorbabel convert --to name 'rgb(30, 144, 255)'
  colorbabel convert --all dodgerblue`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setConvertDefaults()

		for _, arg := range args {
			c, e := color.Parse(arg)
			if e != nil {
				log.Fatal(e)
			}

			if all {
				fmt.Println(arg)
				for _, k := range color.Kinds {
					s, e := color.Format(c, k)
					if e != nil {
						log.Fatal(e)
					}
					fmt.Printf("  %4s = %s\n", k, s)
				}
				continue
			}

			s, e := color.Format(c, to)
			if e != nil {
				log.Fatal(e)
			}
			swatch(c, fmt.Sprintf("%s = %s", arg, s))
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&to, "to", "t", "", "output representation (hex|rgb|rgba|hsl|hsv|husl|lab|xyz|name)")
	convertCmd.Flags().BoolVarP(&all, "all", "a", false, "print every representation")
}

func setConvertDefaults() {
	if to == "" {
		to = viper.GetString("to")
	}
}
