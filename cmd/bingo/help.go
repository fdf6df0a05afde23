package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bingo <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate     Generate boards as CSV files and a printable PDF")
	fmt.Fprintln(w, "  render       Rebuild the PDF from a folder of board CSV files")
	fmt.Fprintln(w, "  init         Write a starter config file")
	fmt.Fprintln(w, "  doctor       Check templates, word lists, fonts and output paths")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bingo help <command>' for details on a specific command.")
}

// printRenderOptions prints the flags shared by generate, render and doctor.
func printRenderOptions(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -m, --mode <s>            Render mode: text, image")
	fmt.Fprintln(w, "      --font <path>         TrueType/OpenType font (required in image mode)")
	fmt.Fprintln(w, "      --background <path>   Template image for image mode")
	fmt.Fprintln(w, "      --dpi <f>             Raster resolution (default 150)")
	fmt.Fprintln(w, "      --min-font <f>        Smallest font size before text overflows (default 6)")
	fmt.Fprintln(w, "      --padding <f>         Space between cell border and text")
	fmt.Fprintln(w, "      --no-title            Omit the board title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (text mode):")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --pdf <path>          Combined PDF (default <output-dir>/bingo_boards.pdf)")
	fmt.Fprintln(w, "      --images <dir>        Save per-board PNGs (image mode)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/ and words/")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bingo generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate bingo boards from a template and word lists.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Boards:")
	fmt.Fprintln(w, "  -n, --count <n>           Number of boards (default 5)")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or CSV path (default classic)")
	fmt.Fprintln(w, "      --words <m=path>      Word list: marker=path or marker:name=path (repeatable)")
	fmt.Fprintln(w, "      --free-marker <s>     Template token for the free space (default e)")
	fmt.Fprintln(w, "      --free-label <s>      Free space text (default FREE)")
	fmt.Fprintln(w, "      --seed <n>            Random seed for reproducible boards")
	fmt.Fprintln(w, "  -o, --output-dir <dir>    Board CSV directory (default bingo_csv)")
	fmt.Fprintln(w, "      --no-pdf              Write CSV files only")
	fmt.Fprintln(w)
	printRenderOptions(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Built-in templates: classic (5x5), mini (3x3), office (3x4).")
	fmt.Fprintln(w, "Built-in word lists: company, hollywood, football.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bingo render [csv-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render bingo_board_<n>.csv files into one PDF, in board order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  csv-dir    Board directory (default: output.csvDir from config, or bingo_csv)")
	fmt.Fprintln(w)
	printRenderOptions(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bingo init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration to a YAML file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       File to create (default bingo.yaml)")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bingo doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load the template and word lists, render one sample board and check")
	fmt.Fprintln(w, "that the output directory is writable. Nothing is written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Accepts every generate flag, plus:")
	fmt.Fprintln(w, "      --json                Machine-readable output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bingo version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bingo help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
