package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/chr2png"
	"github.com/bodgit/chr2png/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
)

const (
	defaultPalette = "0x0f 0x00 0x10 0x30"
	defaultWorkers = 4
)

var (
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3))
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1))
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitError(err error) cli.ExitCoder {
	return cli.NewExitError(fmt.Sprintf("%s %v", errStyle.Render("error:"), err), 1)
}

func newConverter(c *cli.Context) (*chr2png.Converter, error) {
	p, err := palette.Parse(c.String("palette"))
	if err != nil {
		return nil, err
	}

	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return chr2png.New(p, logger, log.New(os.Stderr, warnStyle.Render("warning:")+" ", 0))
}

func paletteFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "palette",
		Aliases: []string{"p"},
		EnvVars: []string{"CHR2PNG_PALETTE"},
		Value:   defaultPalette,
		Usage:   "up to 4 space separated master palette numbers, decimal or 0x prefixed hex",
	}
}

func scaleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "scale",
			Aliases: []string{"s"},
			Value:   1,
			Usage:   "enlarge the image by this factor",
		},
		&cli.BoolFlag{
			Name:  "lenient",
			Usage: "warn rather than fail if a dump is not exactly 4096 bytes",
		},
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "chr2png"
	app.Usage = "NES CHR to PNG converter"
	app.Description = "Input files should be text files of hexadecimal bytes. The simplest way to make one is to open the game in FCEUX, open the PPU viewer and copy 0x0000 to 0x0FFF (or 0x1000 to 0x1FFF) to a text file."
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Render a pattern table dump as a PNG image",
			Description: "",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "chr-file",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "path to CHR dump",
				},
				&cli.StringFlag{
					Name:     "out-file",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "output PNG file",
				},
				paletteFlag(),
			}, scaleFlags()...),
			Action: func(c *cli.Context) error {
				m, err := newConverter(c)
				if err != nil {
					return exitError(err)
				}
				m.Scale = c.Int("scale")
				m.Lenient = c.Bool("lenient")

				if err := m.Convert(c.String("chr-file"), c.String("out-file")); err != nil {
					return exitError(err)
				}

				return nil
			},
		},
		{
			Name:        "encode",
			Usage:       "Turn a 128x128 image back into a pattern table dump",
			Description: "Images with more than 4 colors are reduced first, then each pixel is matched to the closest palette color.",
			ArgsUsage:   "IMAGE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out-file",
					Aliases: []string{"o"},
					Usage:   "output dump file, defaults to standard output",
				},
				paletteFlag(),
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return exitError(err)
				}

				if file := c.String("out-file"); file != "" {
					if err := m.EncodeFile(c.Args().First(), file); err != nil {
						return exitError(err)
					}
					return nil
				}

				if err := m.Encode(c.Args().First(), os.Stdout); err != nil {
					return exitError(err)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every .txt dump in a directory",
			Description: "Each dump is written as a PNG image with the same name alongside it.",
			ArgsUsage:   "DIRECTORY",
			Flags: append([]cli.Flag{
				paletteFlag(),
				&cli.IntFlag{
					Name:    "workers",
					Aliases: []string{"j"},
					Value:   defaultWorkers,
					Usage:   "number of dumps to convert at once",
				},
			}, scaleFlags()...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return exitError(err)
				}
				m.Scale = c.Int("scale")
				m.Lenient = c.Bool("lenient")

				if err := m.Batch(c.Args().First(), c.Int("workers")); err != nil {
					return exitError(err)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
