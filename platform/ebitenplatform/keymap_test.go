package ebitenplatform_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/platform/ebitenplatform"
	"github.com/stretchr/testify/assert"
)

func TestEveryKeyMaps(t *testing.T) {
	for _, key := range input.Keys() {
		ek, ok := ebitenplatform.KeyToEbiten(key)
		if !assert.True(t, ok, "no ebiten key for %s", key) {
			continue
		}
		back, ok := ebitenplatform.KeyFromEbiten(ek)
		assert.True(t, ok)
		assert.Equal(t, key, back, "round trip of %s", key)
	}
}

func TestKeyFromEbiten(t *testing.T) {
	tests := []struct {
		ebiten ebiten.Key
		want   input.Key
	}{
		{ebiten.KeyArrowLeft, input.KeyLeft},
		{ebiten.KeyShiftRight, input.KeyShift},
		{ebiten.KeyNumpadEnter, input.KeyEnter},
		{ebiten.KeyQ, input.KeyQ},
		{ebiten.KeyDigit7, input.Key7},
		{ebiten.KeyF11, input.KeyF11},
	}
	for _, tt := range tests {
		got, ok := ebitenplatform.KeyFromEbiten(tt.ebiten)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}

	_, ok := ebitenplatform.KeyFromEbiten(ebiten.KeyCapsLock)
	assert.False(t, ok)
}
