package texview

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/naomigo/naomi/holly/texture"
)

var (
	flags = flag.NewFlagSet("texview", flag.ExitOnError)

	format  = flags.String("format", "ARGB1555", "ARGB1555, RGB565, ARGB4444 or ARGB8888")
	size    = flags.Int("size", 0, "texture size, guessed from the file size if unset")
	twiddle = flags.Bool("twiddle", false, "the texture is twiddled")
	scale   = flags.Int("scale", 2, "window scale factor")
)

const usageString = `Shows a raw Naomi texture as written by the texture command.

Usage: %s [flags] <texture>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "texview")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	f, err := texture.ParseFormat(*format)
	if err != nil {
		log.Fatalln(err)
	}
	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	img, err := texture.DecodeBytes(data, *size, f, *twiddle)
	if err != nil {
		log.Fatalln(err)
	}

	n := img.Bounds().Dx()
	ebiten.SetWindowSize(n**scale, n**scale)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%dx%d %v)", flags.Arg(0), n, n, f))
	if err := ebiten.RunGame(&viewer{img: ebiten.NewImageFromImage(img)}); err != nil {
		log.Fatalln(err)
	}
}

type viewer struct {
	img *ebiten.Image
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.img.Bounds().Dx(), v.img.Bounds().Dy()
}
