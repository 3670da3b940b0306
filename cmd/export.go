package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorbabel/color"
	"github.com/mmuldo/colorbabel/image"
	"github.com/mmuldo/colorbabel/theme"
)

var (
	tplFile  string
	exportTo string
	imgPath  string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [COLOR...]",
	Short: "Export a palette through a template",
	Long: `Assign theme roles (color0, color1, ..., background, foreground)
to a palette and render it through a pongo2 template, e.g.

  colorbabel export --template termite.conf navy teal gold white
  colorbabel export --image wallpaper.png --template termite.conf

Without a template the theme is written out as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		setExtractDefaults()

		var cs []color.Color
		var e error
		if imgPath != "" {
			ccl, err := image.Extract(imgPath, num)
			if err != nil {
				log.Fatal(err)
			}
			cs = ccl.Colors()
		} else {
			if len(args) == 0 {
				log.Fatal("provide colors as arguments or an image via --image")
			}
			cs, e = color.ParseAll(args)
			if e != nil {
				log.Fatal(e)
			}
		}

		p, e := theme.Delegate(cs)
		if e != nil {
			log.Fatal(e)
		}
		t := theme.Create(p, viper.GetStringMap("options"))

		if tplFile == "" {
			if exportTo != "" {
				if e := theme.Save(t, exportTo); e != nil {
					log.Fatal(e)
				}
				fmt.Println("wrote", exportTo)
				return
			}
			b, e := json.MarshalIndent(t, "", "  ")
			if e != nil {
				log.Fatal(e)
			}
			fmt.Println(string(b))
			return
		}

		o, e := theme.Render(t, tplFile)
		if e != nil {
			log.Fatal(e)
		}

		if exportTo != "" {
			if e := ioutil.WriteFile(exportTo, []byte(o), 0644); e != nil {
				log.Fatal(e)
			}
			fmt.Println("wrote", exportTo)
			return
		}
		fmt.Print(o)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&tplFile, "template", "", "pongo2 template to render the theme through")
	exportCmd.Flags().StringVarP(&exportTo, "out", "o", "", "file to write the result to")
	exportCmd.Flags().StringVarP(&imgPath, "image", "i", "", "build the palette from an image instead of arguments")
	exportCmd.Flags().IntVarP(&num, "num", "n", 0, "number of colors to extract with --image")
}
