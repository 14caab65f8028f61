package texture

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/colornames"
)

var (
	flags = flag.NewFlagSet("texture", flag.ExitOnError)

	format  = flags.String("format", "ARGB1555", "ARGB1555, RGB565, ARGB4444, ARGB8888, CLUT8, CLUT4 or GRAY8")
	size    = flags.Int("size", 0, "scale to a square texture of this size")
	twiddle = flags.Bool("twiddle", false, "store 16-bit textures twiddled")
	dither  = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	palette = flags.Int("palette", 256, "number of colors in CLUT8 and CLUT4 format")
	bg      = flags.String("bg", "", "fill transparent areas with this named color")

	imagefile string
)

const usageString = `Image to Naomi texture converter.

Writes <image>.<format> and, for palettized formats, the ARGB8888 palette to
<image>.pal.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "texture")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	opt := options{
		format:  strings.ToUpper(*format),
		size:    *size,
		twiddle: *twiddle,
		dither:  *dither,
		colors:  *palette,
	}
	if *bg != "" {
		c, ok := colornames.Map[strings.ToLower(*bg)]
		if !ok {
			log.Fatalln("unknown color:", *bg)
		}
		opt.bg = color.Color(c)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}

	res, err := convert(src, opt)
	if err != nil {
		log.Fatalln(err)
	}

	outfile := strings.TrimSuffix(imagefile, filepath.Ext(imagefile))
	if err := os.WriteFile(outfile+"."+opt.format, res.pix, 0o644); err != nil {
		log.Fatalln(err)
	}
	if res.palette != nil {
		if err := os.WriteFile(outfile+".pal", res.palette, 0o644); err != nil {
			log.Fatalln(err)
		}
	}
}
