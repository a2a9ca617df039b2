package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/mdview"
	"pkt.systems/mdview/termview"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdview")
}

func main() {
	var (
		themeName   string
		widthFlag   int
		osc8Flag    string
		listThemes  bool
		outPath     string
		styleFile   string
		maxBlocks   int
		textLimit   int
		noFront     bool
		debugTree   bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdview", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&styleFile, "style", "", "YAML style override file")
	flags.IntVar(&maxBlocks, "max-blocks", 0, "Cap on top-level blocks (0 = unlimited)")
	flags.IntVar(&textLimit, "text-limit", 0, "Truncate text nodes to this many runes (0 = unlimited)")
	flags.BoolVar(&noFront, "no-frontmatter", false, "Do not strip YAML front matter")
	flags.BoolVar(&debugTree, "debug-tree", false, "Log the parsed tree to stderr before rendering")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fatal(err)
	}

	if showVersion {
		fmt.Println(version.Current())
		return
	}
	if listThemes {
		for _, name := range termview.AvailableThemes() {
			fmt.Println(name)
		}
		return
	}

	theme, ok := termview.ThemeByName(themeName)
	if !ok {
		fatal(fmt.Errorf("unknown theme %q", themeName))
	}

	source, err := readSource(flags.Args())
	if err != nil {
		fatal(err)
	}

	opts := []mdview.Option{
		mdview.WithMaxTopLevelChildren(maxBlocks),
		mdview.WithTextLimit(textLimit),
		mdview.WithFrontMatter(!noFront),
	}
	if styleFile != "" {
		data, err := os.ReadFile(styleFile)
		if err != nil {
			fatal(err)
		}
		styles, err := mdview.StyleTableFromYAML(data)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, mdview.WithStyles(styles))
	}
	if debugTree {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		defer logger.Sync()
		opts = append(opts, mdview.WithLogger(logger), mdview.WithDebugPrintTree(true))
	}

	renderer, err := mdview.New(opts...)
	if err != nil {
		fatal(err)
	}
	nodes, err := renderer.Render(source)
	if err != nil {
		fatal(err)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		out = f
	}

	width := widthFlag
	if width <= 0 {
		width = defaultWidth
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	tv := termview.New(theme, width, termview.WithOSC8(resolveOSC8(osc8Flag, out)))
	if err := tv.RenderTo(out, nodes); err != nil {
		fatal(err)
	}
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func resolveOSC8(flag string, out *os.File) bool {
	switch strings.ToLower(flag) {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(out.Fd())) && termview.DetectOSC8Support()
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "mdview:", err)
	os.Exit(1)
}
