package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorbabel/color"
	"github.com/mmuldo/colorbabel/image"
	"github.com/mmuldo/colorbabel/palette"
)

var (
	bins      int
	blendTo   string
	outFile   string
	diverging string
	midSpread float64
	logAmt    float64
	quiet     bool
)

// blendCmd represents the blend command
var blendCmd = &cobra.Command{
	Use:   "blend COLOR COLOR...",
	Short: "Blend colors into a colormap and sample it",
	Long: `Blend colors into a colormap by linear interpolation and print
evenly spaced samples through it, e.g.

  colorbabel blend --bins 5 '#00008b' white
  colorbabel blend --diverging light navy firebrick
  colorbabel blend --out map.png teal gold`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setBlendDefaults()

		anchors, e := color.ParseAll(args)
		if e != nil {
			log.Fatal(e)
		}

		p, e := palette.Blend(anchors...)
		if e != nil {
			log.Fatal(e)
		}

		if diverging != "" {
			center, e := palette.Center(diverging)
			if e != nil {
				log.Fatal(e)
			}
			p, e = p.Diverging(center, midSpread, logAmt)
			if e != nil {
				log.Fatal(e)
			}
		}

		samples, e := p.Sample(bins)
		if e != nil {
			log.Fatal(e)
		}

		if !quiet {
			for _, c := range samples {
				s, e := color.Format(c, blendTo)
				if e != nil {
					log.Fatal(e)
				}
				swatch(c, s)
			}
		}

		if outFile != "" {
			if e := image.WritePNG(outFile, image.Gradient(p, 800, 100)); e != nil {
				log.Fatal(e)
			}
			fmt.Println("wrote", outFile)
		}
	},
}

func init() {
	rootCmd.AddCommand(blendCmd)

	blendCmd.Flags().IntVarP(&bins, "bins", "n", 0, "number of samples through the map")
	blendCmd.Flags().StringVarP(&blendTo, "to", "t", "", "output representation for samples")
	blendCmd.Flags().StringVarP(&outFile, "out", "o", "", "render the map to a PNG file")
	blendCmd.Flags().StringVarP(&diverging, "diverging", "d", "", "rebuild as a diverging map around 'light', 'dark' or a color")
	blendCmd.Flags().Float64Var(&midSpread, "mid-spread", 0.4, "how much of a diverging map the middle color takes up")
	blendCmd.Flags().Float64Var(&logAmt, "log-amt", 1e-3, "how sharply a diverging map drops to its middle color")
	blendCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip printing samples")
}

func setBlendDefaults() {
	if bins == 0 {
		bins = viper.GetInt("bins")
	}
	if blendTo == "" {
		blendTo = viper.GetString("to")
	}
}
