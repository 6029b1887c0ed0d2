package nametbl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aril-lang/arilc/internal/nametbl"
)

func TestInternIsIdempotent(t *testing.T) {
	tbl := nametbl.New()

	a1 := tbl.Intern("foo")
	a2 := tbl.Intern("foo")
	b := tbl.Intern("bar")

	assert.Same(t, a1, a2, "equal strings must intern to the identical handle")
	assert.NotSame(t, a1, b, "distinct strings must not share a handle")
}

func TestInternNormalizesUnicode(t *testing.T) {
	tbl := nametbl.New()

	// "é" as a single NFC codepoint vs. "e" + combining acute accent (NFD).
	nfc := tbl.Intern("café")
	nfd := tbl.Intern("café")

	assert.Same(t, nfc, nfd, "NFC and NFD spellings of the same identifier must intern identically")
}

func TestPrivateNames(t *testing.T) {
	tbl := nametbl.New()

	assert.True(t, tbl.Intern("_hidden").Private())
	assert.False(t, tbl.Intern("visible").Private())
}

func TestHookPushPopBalance(t *testing.T) {
	tbl := nametbl.New()
	x := tbl.Intern("x")

	tbl.Hook(x, "outer")
	require.Equal(t, "outer", x.Current())

	tbl.PushScope()
	tbl.Hook(x, "inner")
	assert.Equal(t, "inner", x.Current())
	assert.Equal(t, 1, tbl.Depth())
	tbl.PopScope()

	assert.Equal(t, "outer", x.Current(), "pop must restore the pre-push binding")
	assert.Equal(t, 0, tbl.Depth())
}

func TestNestedScopesRestoreInReverseOrder(t *testing.T) {
	tbl := nametbl.New()
	x := tbl.Intern("x")
	y := tbl.Intern("y")

	tbl.PushScope()
	tbl.Hook(x, 1)
	tbl.PushScope()
	tbl.Hook(x, 2)
	tbl.Hook(y, "inner-y")
	assert.Equal(t, 2, tbl.Depth())

	tbl.PopScope()
	assert.Equal(t, 1, x.Current())
	assert.Nil(t, y.Current())

	tbl.PopScope()
	assert.Nil(t, x.Current())
	assert.Equal(t, 0, tbl.Depth())
}

func TestPopScopeWithoutPushPanics(t *testing.T) {
	tbl := nametbl.New()
	assert.Panics(t, func() { tbl.PopScope() })
}
