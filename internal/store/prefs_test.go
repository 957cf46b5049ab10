package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsInt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	p := NewPrefs(kv, "quiz_helper")

	assert.Equal(t, 3, p.Int(ctx, "hints_remaining", 3))

	require.NoError(t, p.SetInt(ctx, "hints_remaining", 1))
	assert.Equal(t, 1, p.Int(ctx, "hints_remaining", 3))

	v, ok, _ := kv.Get(ctx, "quiz_helper/hints_remaining")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestPrefsCorruptValuesFallBack(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	p := NewPrefs(kv, "ns")

	require.NoError(t, kv.Set(ctx, "ns/n", "not-a-number"))
	require.NoError(t, kv.Set(ctx, "ns/b", "maybe"))
	require.NoError(t, kv.Set(ctx, "ns/j", "{broken"))

	assert.Equal(t, 7, p.Int(ctx, "n", 7))
	assert.True(t, p.Bool(ctx, "b", true))

	dst := []int{42}
	assert.False(t, p.JSON(ctx, "j", &dst))
	assert.Equal(t, []int{42}, dst)
}

func TestPrefsJSON(t *testing.T) {
	ctx := context.Background()
	p := NewPrefs(NewMemory(), "ns")

	type item struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}
	require.NoError(t, p.SetJSON(ctx, "items", []item{{"a", 1}, {"b", 2}}))

	var got []item
	require.True(t, p.JSON(ctx, "items", &got))
	assert.Equal(t, []item{{"a", 1}, {"b", 2}}, got)
}

func TestPrefsClearOnlyTouchesNamespace(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	a := NewPrefs(kv, "a")
	ab := NewPrefs(kv, "ab")

	require.NoError(t, a.SetBool(ctx, "x", true))
	require.NoError(t, a.SetInt(ctx, "y", 1))
	require.NoError(t, ab.SetInt(ctx, "z", 2))

	require.NoError(t, a.Clear(ctx))

	assert.False(t, a.Bool(ctx, "x", false))
	assert.Equal(t, 0, a.Int(ctx, "y", 0))
	assert.Equal(t, 2, ab.Int(ctx, "z", 0))
}
