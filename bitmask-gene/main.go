package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZenLiuCN/bitmask/conf"
	"github.com/ZenLiuCN/bitmask/generator"
	"github.com/ZenLiuCN/fn"
	"github.com/urfave/cli/v2"
)

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Usage:   "show version",
		Aliases: []string{"v"},
	}
	err := (&cli.App{
		UseShortOptionHandling: true,
		Name:                   "Bitmask Generator",
		Version:                "v0.1.0",
		Usage:                  "Generate bitmask types from integer enumerations",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "type",
				Usage:   "enum spec type names, every type with a //bitmask: directive when omitted",
				Aliases: []string{"t"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "debug generator",
				Aliases: []string{"d"},
			},
			&cli.StringSliceFlag{
				Name:     "tags",
				Usage:    "tags to apply",
				Required: false,
				Aliases:  []string{"g"},
			},
			&cli.StringFlag{
				Name:        "out",
				DefaultText: "<type>_bitmask.go",
				Usage:       "output file name",
				Required:    false,
				Value:       "",
				Aliases:     []string{"o"},
			},
			&cli.StringFlag{
				Name:        "width",
				DefaultText: generator.DefaultWidth.Alias,
				Usage:       "default underlying integer: u8 u16 u32 u64 u128 usize i8 i16 i32 i64 i128 isize",
				Aliases:     []string{"w"},
			},
			&cli.BoolFlag{
				Name:        "inverted",
				Usage:       "generate inverted flag constants by default",
				Aliases:     []string{"i"},
				Value:       false,
				DefaultText: "false",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Usage:   "write a JSON manifest of the generated types",
				Aliases: []string{"m"},
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "HOCON configuration file",
				DefaultText: "bitmask.conf",
				Aliases:     []string{"c"},
			},
		},

		Suggest:              true,
		EnableBashCompletion: true,
		Action: func(c *cli.Context) error {
			var file []string
			if c.Args().Len() == 0 {
				file = append(file, ".")
			} else {
				file = append(file, c.Args().Slice()...)
			}
			var dir string
			if len(file) == 1 && isDir(file[0]) {
				dir = file[0]
				file[0] = packagePattern(dir)
			} else if c.IsSet("tags") {
				log.Fatal("--tags can only applies with directory")
			} else {
				dir = filepath.Dir(file[0])
			}
			cfgFile := c.String("config")
			if cfgFile == "" {
				cfgFile = filepath.Join(dir, "bitmask.conf")
			}
			fn.Panic(conf.Initialize(cfgFile))
			g, err := configure(c, conf.GetConfig(), dir, file)
			if err != nil {
				return err
			}
			fn.Panic(g.Generate())
			conf.Internal().Infof("generated %d bitmask types into %s", len(g.Declarations()), g.OutputFile())
			return nil
		},
	}).Run(os.Args)
	if err != nil {
		panic(err)
	}
}

// flags is the part of *cli.Context the generator settings are read from.
type flags interface {
	IsSet(name string) bool
	String(name string) string
	StringSlice(name string) []string
	Bool(name string) bool
}

// configure builds the generator from the configuration, explicitly set flags override it.
// Directives in the sources override both when the declarations are resolved.
func configure(c flags, cfg conf.Config, dir string, files []string) (g *generator.Generator, err error) {
	g = new(generator.Generator)
	g.Dir = dir
	g.Files = files
	g.Types = c.StringSlice("type")
	g.Tags = conf.OrElse("bitmask.tags", nil, cfg, func(path string, _ ...[]string) []string {
		return cfg.GetStringList(path)
	})
	g.Out = cfg.GetString("bitmask.output", "")
	g.ManifestFile = cfg.GetString("bitmask.manifest", "")
	if g.Defaults, err = generator.OptionsFromConfig(cfg); err != nil {
		return nil, err
	}
	if c.IsSet("tags") {
		g.Tags = c.StringSlice("tags")
	}
	if c.IsSet("out") {
		g.Out = c.String("out")
	}
	if c.IsSet("manifest") {
		g.ManifestFile = c.String("manifest")
	}
	if c.IsSet("width") {
		w, ok := generator.LookupWidth(c.String("width"))
		if !ok {
			return nil, fmt.Errorf("%w width %q", generator.ErrUnknownOption, c.String("width"))
		}
		g.Defaults = g.Defaults.WithWidth(w)
	}
	if c.IsSet("inverted") {
		g.Defaults = g.Defaults.WithInverted(c.Bool("inverted"))
	}
	if c.Bool("debug") {
		g.Logf = conf.Internal().Infof
	} else {
		g.Logf = conf.Internal().Debugf
	}
	return
}

// packagePattern keeps a relative directory from being loaded as an import path.
func packagePattern(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	dir = filepath.ToSlash(filepath.Clean(dir))
	if dir == "." || dir == ".." || strings.HasPrefix(dir, "../") {
		return dir
	}
	return "./" + dir
}

func isDir(name string) bool {
	if info, err := os.Stat(name); err != nil {
		log.Fatal(err)
	} else {
		return info.IsDir()
	}
	return false
}
