// Package main is a command-line client for the compiled-in template
// catalog. It lists, inspects and customizes templates without a server.
//
// Usage:
//
//	sitekit-cli list [-category c] [-popular] [-feature f] [-format yaml|json]
//	sitekit-cli categories
//	sitekit-cli show <id>
//	sitekit-cli preview <id>
//	sitekit-cli generate <id> [-project p] [-company c] [-tagline t] [-year y] [-color c] [-style s]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sitekit/internal/catalog"
	"sitekit/internal/models"
	"sitekit/internal/service"
)

const usage = `usage: sitekit-cli <command> [flags]

commands:
  list        list templates (-category, -popular, -feature)
  categories  list template categories
  show        print a full template record
  preview     print the preview view of a template
  generate    apply customizations to a template
`

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	// Library logs go to stderr so they never mix with command output.
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	c := &cli{svc: service.New(catalog.Default(), logger), stdout: stdout}

	var err error
	switch args[0] {
	case "list":
		err = c.list(args[1:])
	case "categories":
		err = c.categories(args[1:])
	case "show":
		err = c.show(args[1:])
	case "preview":
		err = c.preview(args[1:])
	case "generate":
		err = c.generate(args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

type cli struct {
	svc    *service.TemplateService
	stdout io.Writer
}

// flagSet builds a subcommand flag set with the shared -format flag.
func flagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.String("format", "yaml", "output format: yaml or json")
	return fs, format
}

// parseWithID parses flags and one positional template ID, accepting the ID
// either before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	var id string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%s: %w: %v", fs.Name(), errUsage, err)
	}
	rest := fs.Args()
	if id == "" && len(rest) > 0 {
		id, rest = rest[0], rest[1:]
	}
	if id == "" {
		return "", fmt.Errorf("%s: %w: template id required", fs.Name(), errUsage)
	}
	if len(rest) > 0 {
		return "", fmt.Errorf("%s: %w: unexpected argument %q", fs.Name(), errUsage, rest[0])
	}
	return id, nil
}

func parseNoArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w: %v", fs.Name(), errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: %w: unexpected argument %q", fs.Name(), errUsage, fs.Arg(0))
	}
	return nil
}

func (c *cli) list(args []string) error {
	fs, format := flagSet("list")
	category := fs.String("category", "", "only templates in this category")
	popular := fs.Bool("popular", false, "only popular templates")
	feature := fs.String("feature", "", "only templates declaring this feature")
	if err := parseNoArgs(fs, args); err != nil {
		return err
	}
	return c.write(*format, c.svc.List(service.ListFilter{
		Category:    *category,
		PopularOnly: *popular,
		Feature:     *feature,
	}))
}

func (c *cli) categories(args []string) error {
	fs, format := flagSet("categories")
	if err := parseNoArgs(fs, args); err != nil {
		return err
	}
	return c.write(*format, c.svc.Categories())
}

func (c *cli) show(args []string) error {
	fs, format := flagSet("show")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	t, ok := c.svc.Get(id)
	if !ok {
		return fmt.Errorf("template %q not found", id)
	}
	return c.write(*format, t)
}

func (c *cli) preview(args []string) error {
	fs, format := flagSet("preview")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	p, ok := c.svc.PreviewData(id)
	if !ok {
		return fmt.Errorf("template %q not found", id)
	}
	return c.write(*format, p)
}

func (c *cli) generate(args []string) error {
	fs, format := flagSet("generate")
	var cust models.Customizations
	fs.StringVar(&cust.ProjectName, "project", "", "project name")
	fs.StringVar(&cust.CompanyName, "company", "", "company name")
	fs.StringVar(&cust.Tagline, "tagline", "", "tagline")
	fs.IntVar(&cust.Year, "year", 0, "copyright year")
	fs.StringVar(&cust.Color, "color", "", "colour scheme")
	fs.StringVar(&cust.Style, "style", "", "style")

	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	result, err := c.svc.Generate(id, cust)
	if err != nil {
		return err
	}
	return c.write(*format, result)
}

// write encodes v to stdout in the requested format.
func (c *cli) write(format string, v any) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(c.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q (want yaml or json)", errUsage, format)
	}
}
