// classforge/cmd/classforge/diff.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/classforge/classforge/pkg/tokens"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <theme> [directory]",
	Short: "Show the resolved tokens a theme overrides relative to the base dictionary",
	Long: `diff resolves both the base dictionary and the named theme (applying
$extends inheritance first), then prints only the paths whose resolved value
differs between them — the same comparison build uses internally to emit a
theme's override-only CSS block.

Example:
  classforge theme diff dark ./my-tokens`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	themeCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	baseDict, themes, err := loadTokens(dir)
	if err != nil {
		return err
	}

	if _, ok := themes[themeName]; !ok {
		return fmt.Errorf("theme %q not found in %s", themeName, dir)
	}

	inheritedThemes, err := tokens.ResolveThemeInheritance(baseDict, themes)
	if err != nil {
		return fmt.Errorf("failed to resolve theme inheritance: %w", err)
	}
	mergedDict := inheritedThemes[themeName]

	resolvedBase, err := resolveTokens(baseDict)
	if err != nil {
		return fmt.Errorf("failed to resolve base tokens: %w", err)
	}

	themeResolver, err := tokens.NewResolver(mergedDict)
	if err != nil {
		return fmt.Errorf("failed to initialize resolver for theme %s: %w", themeName, err)
	}
	resolvedTheme, err := themeResolver.ResolveAll()
	if err != nil {
		return fmt.Errorf("resolution failed for theme %s: %w", themeName, err)
	}

	diff := tokens.Diff(resolvedTheme, resolvedBase)
	if len(diff) == 0 {
		fmt.Printf("Theme %q has no overrides relative to the base dictionary.\n", themeName)
		return nil
	}

	paths := make([]string, 0, len(diff))
	for path := range diff {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	ordered := make(map[string]any, len(diff))
	for _, p := range paths {
		ordered[p] = diff[p]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(orderedDiff{paths: paths, values: ordered})
}

// orderedDiff marshals to JSON preserving sorted path order, since
// encoding/json otherwise re-sorts map keys anyway — kept explicit as
// documentation of the intended ordering contract.
type orderedDiff struct {
	paths  []string
	values map[string]any
}

func (o orderedDiff) MarshalJSON() ([]byte, error) {
	buf := []byte("{")
	for i, p := range o.paths {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.values[p])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}
