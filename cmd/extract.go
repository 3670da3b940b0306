package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorbabel/image"
	"github.com/mmuldo/colorbabel/palette"
)

var (
	num      int
	distinct bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract IMAGE",
	Short: "Extract a representative palette from an image",
	Long: `Extract a representative palette from an image by color
quantization, ranked by pixel prevalence, e.g.

  colorbabel extract --num 8 wallpaper.png
  colorbabel extract --distinct photo.jpg`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setExtractDefaults()

		ccl, e := image.Extract(args[0], num)
		if e != nil {
			log.Fatal(e)
		}

		if distinct {
			for _, c := range palette.Distinct(ccl.Colors(), palette.DefaultDe) {
				swatch(c, c.Hex())
			}
			return
		}

		for _, cc := range ccl {
			swatch(cc.Color, fmt.Sprintf("%s (%d samples)", cc.Color.Hex(), cc.Count))
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntVarP(&num, "num", "n", 0, "number of colors to extract")
	extractCmd.Flags().BoolVar(&distinct, "distinct", false, "collapse colors that read as the same")
}

func setExtractDefaults() {
	if num == 0 {
		num = viper.GetInt("num")
	}
}
