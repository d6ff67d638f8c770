// classforge/cmd/classforge/compile.go
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"github.com/classforge/classforge/pkg/bundle"
	"github.com/classforge/classforge/pkg/generators"
	"github.com/classforge/classforge/pkg/naming"
	_ "github.com/classforge/classforge/pkg/pluginmap"
	"github.com/classforge/classforge/pkg/synth"
	"github.com/classforge/classforge/pkg/tokens"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var compileCmd = &cobra.Command{
	Use:   "compile [directory]",
	Short: "Compile utility classes found in templates into a CSS bundle",
	Long: `compile walks a directory for class="..." attributes, feeds every
distinct attribute value through the utility-class compiler, and writes one
stylesheet containing the generated rule for each.

Example:
  classforge compile ./views --output dist/utilities.css`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

var (
	compileOutput     string
	compileExt        string
	compileNamingFlag string
	compileColorFlag  string
	compileColorMix   bool
	compileTokensDir  string
	compileCatalog    string
)

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "dist/utilities.css", "Output CSS file")
	compileCmd.Flags().StringVar(&compileExt, "ext", ".html,.tmpl,.gohtml", "Comma-separated file extensions to scan")
	compileCmd.Flags().StringVar(&compileNamingFlag, "naming", "hash", "Identifier naming strategy: hash, readable, camel")
	compileCmd.Flags().StringVar(&compileColorFlag, "color-mode", "hex", "Color render mode: hex, oklch, hsl, var")
	compileCmd.Flags().BoolVar(&compileColorMix, "color-mix", false, "Wrap alpha colors in color-mix(in oklab, ...) instead of mode-native alpha")
	compileCmd.Flags().StringVar(&compileTokensDir, "tokens", "", "Optional token directory used as a palette/spacing overlay")
	compileCmd.Flags().StringVar(&compileCatalog, "catalog", "", "Optional path to also write a JSON catalog mapping each class string to its compiled identifier and CSS")
	rootCmd.AddCommand(compileCmd)
}

var classAttrRegex = regexp.MustCompile(`class\s*=\s*"([^"]*)"`)

// extractClassAttributes walks src for class="..." attributes and returns
// the distinct attribute values, in first-seen order. Unlike a class-name
// extractor, the whole attribute value is kept intact: classforge compiles
// one generated identifier per attribute value, not per individual token.
func extractClassAttributes(src string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range classAttrRegex.FindAllStringSubmatch(src, -1) {
		value := strings.TrimSpace(m[1])
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}

func runCompile(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg, err := loadConfig("classforge.toml")
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg)

	exts := make(map[string]bool)
	for _, e := range strings.Split(compileExt, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			exts[e] = true
		}
	}

	var attrValues []string
	seen := make(map[string]bool)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !exts[filepath.Ext(path)] {
			return nil
		}
		content, rerr := os.ReadFile(path)
		if rerr != nil {
			return fmt.Errorf("reading %s: %w", path, rerr)
		}
		for _, v := range extractClassAttributes(string(content)) {
			if !seen[v] {
				seen[v] = true
				attrValues = append(attrValues, v)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(attrValues)

	opts := bundle.DefaultOptions()
	switch compileNamingFlag {
	case "readable":
		opts.NamingMode = naming.Readable
	case "camel":
		opts.NamingMode = naming.CamelCase
	}
	switch compileColorFlag {
	case "oklch":
		opts.ColorMode = synth.ColorOklch
	case "hsl":
		opts.ColorMode = synth.ColorHSL
	case "var":
		opts.ColorMode = synth.ColorVar
	default:
		opts.ColorMode = synth.ColorHex
	}
	opts.ColorMix = compileColorMix

	if compileTokensDir != "" {
		baseDict, _, err := loadTokens(compileTokensDir)
		if err != nil {
			return fmt.Errorf("loading token overlay: %w", err)
		}
		resolved, err := resolveTokens(baseDict)
		if err != nil {
			return fmt.Errorf("resolving token overlay: %w", err)
		}
		opts.Overlay = tokens.NewOverlay(resolved)
	}

	bundled, err := compileConcurrent(attrValues, opts)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", dir, err)
	}

	var blocks []string
	results := make(map[string]bundle.Result, len(attrValues))
	var warnCount int

	for i, v := range attrValues {
		result := bundled[i]
		for _, diag := range result.Diagnostics {
			warnCount++
			slog.Warn("compile diagnostic", "token", diag.Token, "level", string(diag.Level), "message", diag.Message)
		}
		results[v] = result
		if result.CSS == "" {
			continue
		}
		blocks = append(blocks, result.CSS)
	}

	if err := os.MkdirAll(filepath.Dir(compileOutput), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	out := strings.Join(blocks, "\n")
	if err := os.WriteFile(compileOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", compileOutput, err)
	}

	if compileCatalog != "" {
		if err := writeCompileCatalog(results); err != nil {
			return fmt.Errorf("writing catalog %s: %w", compileCatalog, err)
		}
	}

	fmt.Printf("Compiled %d class attribute(s) into %s (%d diagnostic(s))\n", len(attrValues), compileOutput, warnCount)
	return nil
}

// compileConcurrent runs bundle.Bundle over every attribute value on a
// bounded errgroup worker pool, capped at GOMAXPROCS workers so a directory
// with thousands of distinct class attributes doesn't spawn thousands of
// goroutines at once. Bundle is pure and reentrant-safe, so the only
// shared state each worker touches is its own slot in results.
func compileConcurrent(attrValues []string, opts bundle.Options) ([]bundle.Result, error) {
	results := make([]bundle.Result, len(attrValues))

	g := new(errgroup.Group)
	workers := runtime.GOMAXPROCS(0)
	if workers > len(attrValues) {
		workers = len(attrValues)
	}
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, v := range attrValues {
		g.Go(func() error {
			results[i] = bundle.Bundle(v, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeCompileCatalog renders the compiled class-string-to-identifier table
// through the same catalog schema the token-overlay build command emits, so
// both a theme build and a class compile produce catalogs in one shape.
func writeCompileCatalog(results map[string]bundle.Result) error {
	gen := generators.NewCatalogGenerator()
	out, err := gen.GenerateWithUtilities(nil, nil, nil, nil, results)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(compileCatalog), 0755); err != nil {
		return err
	}
	return os.WriteFile(compileCatalog, []byte(out), 0644)
}
