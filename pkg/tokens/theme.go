package tokens

import (
	"fmt"
)

// ResolveThemeInheritance resolves every theme's $extends chain against base
// and the sibling themes, returning one fully-merged Dictionary per theme
// name. A theme with no $extends merges directly onto base; one with
// $extends merges onto its (already resolved) parent first. Chains are
// resolved depth-first with cycle detection, so a theme referencing itself
// directly or through a longer loop fails instead of recursing forever.
func ResolveThemeInheritance(base *Dictionary, themes map[string]*Dictionary) (map[string]*Dictionary, error) {
	resolved := make(map[string]*Dictionary, len(themes))
	visiting := make(map[string]bool)

	var resolve func(name string) (*Dictionary, error)
	resolve = func(name string) (*Dictionary, error) {
		if d, ok := resolved[name]; ok {
			return d, nil
		}
		theme, ok := themes[name]
		if !ok {
			return nil, fmt.Errorf("theme '%s' not found", name)
		}
		if visiting[name] {
			return nil, fmt.Errorf("circular theme inheritance detected at '%s'", name)
		}
		visiting[name] = true
		defer delete(visiting, name)

		parent := base
		if extendsRaw, ok := theme.Root["$extends"]; ok {
			extendsName, ok := extendsRaw.(string)
			if !ok {
				return nil, fmt.Errorf("invalid $extends value in theme '%s': must be a string", name)
			}
			p, err := resolve(extendsName)
			if err != nil {
				return nil, err
			}
			parent = p
		}

		merged, err := Inherit(parent, theme)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve theme '%s': %w", name, err)
		}
		resolved[name] = merged
		return merged, nil
	}

	for name := range themes {
		if _, err := resolve(name); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

// Inherit creates a new dictionary: a deep copy of base with theme
// deep-merged over it, so nested groups from both sides are combined.
func Inherit(base *Dictionary, theme *Dictionary) (*Dictionary, error) {
	// Start from a real deep copy of base: merging into a fresh empty
	// Dictionary would otherwise assign base's nested group maps by
	// reference (deepMerge only copies at collision points), so resolving a
	// second theme against the same base could mutate the first theme's
	// result through shared nested maps.
	result := base.DeepCopy()

	// 2. $extends is not followed here; ResolveThemeInheritance resolves
	// the chain and passes the already-merged parent in as base.
	if extends, ok := theme.Root["$extends"].(string); ok {
		_ = extends
	}

	// 3. Merge theme overrides
	if err := result.Merge(theme); err != nil {
		return nil, fmt.Errorf("failed to merge theme dictionary: %w", err)
	}

	// Clean up metadata
	delete(result.Root, "$extends")
	delete(result.Root, "$schema")

	return result, nil
}
