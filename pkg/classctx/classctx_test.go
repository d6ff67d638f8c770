// classforge/pkg/classctx/classctx_test.go

package classctx_test

import (
	"testing"

	"github.com/classforge/classforge/pkg/classctx"
	"github.com/classforge/classforge/pkg/synth"
	"github.com/stretchr/testify/assert"
)

func TestAddGroupsByKey(t *testing.T) {
	ctx := classctx.New()
	ctx.Add("", []synth.Declaration{{Property: "padding", Value: "1rem"}})
	ctx.Add("hover:", []synth.Declaration{{Property: "color", Value: "#fff"}})
	ctx.Add("", []synth.Declaration{{Property: "margin", Value: "2rem"}})

	groups := ctx.Groups()
	assert.Len(t, groups, 2)
	assert.Equal(t, "", groups[0].Key)
	assert.Len(t, groups[0].Declarations, 2)
}

func TestResolveLastWins(t *testing.T) {
	g := &classctx.VariantGroup{Declarations: []synth.Declaration{
		{Property: "color", Value: "red"},
		{Property: "color", Value: "blue"},
	}}
	resolved := g.Resolve()
	assert.Len(t, resolved, 1)
	assert.Equal(t, "blue", resolved[0].Value)
}

func TestFoldAxisPair(t *testing.T) {
	decls := []synth.Declaration{
		{Property: "padding-left", Value: "1rem"},
		{Property: "padding-right", Value: "1rem"},
	}
	folded := classctx.Fold(decls)
	assert.Equal(t, []synth.Declaration{{Property: "padding-inline", Value: "1rem"}}, folded)
}

func TestFoldFourSided(t *testing.T) {
	decls := []synth.Declaration{
		{Property: "margin-top", Value: "2rem"},
		{Property: "margin-right", Value: "2rem"},
		{Property: "margin-bottom", Value: "2rem"},
		{Property: "margin-left", Value: "2rem"},
	}
	folded := classctx.Fold(decls)
	assert.Equal(t, []synth.Declaration{{Property: "margin", Value: "2rem"}}, folded)
}

func TestFoldDoesNotApplyWhenValuesDiffer(t *testing.T) {
	decls := []synth.Declaration{
		{Property: "padding-left", Value: "1rem"},
		{Property: "padding-right", Value: "2rem"},
	}
	folded := classctx.Fold(decls)
	assert.Equal(t, decls, folded)
}

func TestFoldGapShorthand(t *testing.T) {
	decls := []synth.Declaration{
		{Property: "row-gap", Value: "1rem"},
		{Property: "column-gap", Value: "1rem"},
	}
	folded := classctx.Fold(decls)
	assert.Equal(t, []synth.Declaration{{Property: "gap", Value: "1rem"}}, folded)
}
