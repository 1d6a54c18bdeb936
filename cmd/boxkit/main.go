package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/malivvan/boxkit"
	"github.com/malivvan/boxkit/cfg"
	"github.com/malivvan/boxkit/log"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "boxkit"
	myApp.Usage = "s-box/p-box byte transform toolbox"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML table config, built-in reference tables when empty",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "only log errors",
		},
	}
	myApp.Commands = []cli.Command{
		{
			Name:  "demo",
			Usage: "run a single byte through both transforms and back",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "byte,b",
					Value: 179,
					Usage: "input byte, 0-255",
				},
			},
			Action: demo,
		},
		{
			Name:   "selftest",
			Usage:  "verify the round-trip identity for all 256 byte values",
			Action: selftest,
		},
		{
			Name:  "gen",
			Usage: "generate seeded tables as a YAML config snippet",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed,s",
					Usage: "seed string, same seed yields same tables",
				},
			},
			Action: gen,
		},
	}
	err := myApp.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the table config, starts logging and builds the engines.
func setup(c *cli.Context) (*boxkit.SBox, *boxkit.PBox, error) {
	config := cfg.Default()
	if path := c.GlobalString("config"); path != "" {
		if err := cfg.LoadFile(path, &config); err != nil {
			return nil, nil, errors.Wrap(err, "load config")
		}
	}
	if c.GlobalBool("quiet") {
		config.Logging.Level = "error"
	}
	if err := log.Start(config.Logging); err != nil {
		return nil, nil, err
	}
	sbox, pbox, err := config.Boxes()
	if err != nil {
		return nil, nil, errors.Wrap(err, "build tables")
	}
	return sbox, pbox, nil
}

func demo(c *cli.Context) error {
	sbox, pbox, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Stop()

	in := c.Int("byte")
	if in < 0 || in > 255 {
		return errors.Errorf("input %d does not fit a byte", in)
	}
	b := byte(in)
	log.Info().Str("byte", bin(b)).Msg("input")

	enc := sbox.Forward(b)
	log.Info().Str("byte", bin(enc)).Msg("s-box forward")
	log.Info().Str("byte", bin(sbox.Inverse(enc))).Msg("s-box inverse")

	enc = pbox.Forward(b)
	log.Info().Str("byte", bin(enc)).Msg("p-box forward")
	log.Info().Str("byte", bin(pbox.Inverse(enc))).Msg("p-box inverse")
	return nil
}

func selftest(c *cli.Context) error {
	sbox, pbox, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Stop()

	for i := 0; i < 256; i++ {
		b := byte(i)
		if sbox.Inverse(sbox.Forward(b)) != b || sbox.Forward(sbox.Inverse(b)) != b {
			return errors.Errorf("s-box round trip failed at %s", bin(b))
		}
		if pbox.Inverse(pbox.Forward(b)) != b || pbox.Forward(pbox.Inverse(b)) != b {
			return errors.Errorf("p-box round trip failed at %s", bin(b))
		}
	}
	log.Info().Int("bytes", 256).Msg("self test passed")
	return nil
}

func gen(c *cli.Context) error {
	seed := []byte(c.String("seed"))
	sbox, err := boxkit.GenerateSBox(seed)
	if err != nil {
		return errors.Wrap(err, "generate s-box")
	}
	pbox, err := boxkit.GeneratePBox(seed)
	if err != nil {
		return errors.Wrap(err, "generate p-box")
	}

	var out struct {
		Sbox []int `yaml:"sbox"`
		Pbox []int `yaml:"pbox"`
	}
	for _, v := range sbox.Table() {
		out.Sbox = append(out.Sbox, int(v))
	}
	for _, v := range pbox.Table() {
		out.Pbox = append(out.Pbox, int(v))
	}
	snippet, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(snippet)
	return err
}

func bin(b byte) string {
	return fmt.Sprintf("%08b", b)
}
