package graphics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationType_Text(t *testing.T) {
	var a AnimationType
	require.NoError(t, a.UnmarshalText([]byte(" Walk ")))
	assert.Equal(t, AnimationWalk, a)

	text, err := AnimationIdle.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "idle", string(text))

	assert.ErrorIs(t, a.UnmarshalText([]byte("run")), ErrInvalidAnimation)
	_, err = AnimationType(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidAnimation)
}

func TestAnimationSettings_Frames(t *testing.T) {
	tests := []struct {
		name     string
		settings AnimationSettings
		want     []TexturePath
	}{
		{
			"single frame needs no number",
			AnimationSettings{FirstTexture: "player.png", Count: 1, Interval: time.Second},
			[]TexturePath{"player.png"},
		},
		{
			"counts up",
			AnimationSettings{FirstTexture: "textures/walk_1.png", Count: 3, Interval: time.Second},
			[]TexturePath{"textures/walk_1.png", "textures/walk_2.png", "textures/walk_3.png"},
		},
		{
			"keeps zero padding",
			AnimationSettings{FirstTexture: "idle09.png", Count: 2, Interval: time.Second},
			[]TexturePath{"idle09.png", "idle10.png"},
		},
		{
			"no extension",
			AnimationSettings{FirstTexture: "frames/7", Count: 2, Interval: time.Second},
			[]TexturePath{"frames/7", "frames/8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.settings.Frames()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnimationSettings_FramesInvalid(t *testing.T) {
	tests := []struct {
		name     string
		settings AnimationSettings
	}{
		{"zero count", AnimationSettings{FirstTexture: "a_1.png", Interval: time.Second}},
		{"zero interval", AnimationSettings{FirstTexture: "a_1.png", Count: 2}},
		{"no texture", AnimationSettings{Count: 1, Interval: time.Second}},
		{"no frame number", AnimationSettings{FirstTexture: "walk.png", Count: 2, Interval: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.settings.Frames()
			assert.ErrorIs(t, err, ErrInvalidAnimation)
		})
	}
}
