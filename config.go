package main

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// -- config

type Config struct {
	ScreenWidth  int
	ScreenHeight int
	RenderScale  float64
	Fullscreen   bool
	Vsync        bool

	FovDegrees       float64
	MoveSpeed        float64
	TurnSpeed        float64
	MouseSensitivity float64
	ProjectileSpeed  float64

	// texture file paths (PNG or BMP); empty entries fall back to the
	// generated textures
	WallTextures      []string
	FloorTexture      string
	CeilingTexture    string
	SpriteTexture     string
	ProjectileTexture string
}

// loadConfig reads maze3d.yaml from the working directory when present and
// applies MAZE3D_* environment overrides on top of the defaults.
func loadConfig() *Config {
	v := viper.New()

	v.SetDefault("screen.width", 1024)
	v.SetDefault("screen.height", 768)
	v.SetDefault("screen.renderScale", 0.5)
	v.SetDefault("screen.fullscreen", false)
	v.SetDefault("screen.vsync", true)

	v.SetDefault("camera.fovDegrees", 66.0)
	v.SetDefault("camera.moveSpeed", 5.0)
	v.SetDefault("camera.turnSpeed", 1.5)
	v.SetDefault("camera.mouseSensitivity", 0.12)
	v.SetDefault("projectile.speed", 8.0)

	v.SetDefault("textures.walls", []string{})
	v.SetDefault("textures.floor", "")
	v.SetDefault("textures.ceiling", "")
	v.SetDefault("textures.sprite", "")
	v.SetDefault("textures.projectile", "")

	v.SetConfigName("maze3d")
	v.AddConfigPath(".")
	v.SetEnvPrefix("maze3d")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("config: ignoring unreadable maze3d.yaml: %v", err)
		}
	}

	return &Config{
		ScreenWidth:  v.GetInt("screen.width"),
		ScreenHeight: v.GetInt("screen.height"),
		RenderScale:  v.GetFloat64("screen.renderScale"),
		Fullscreen:   v.GetBool("screen.fullscreen"),
		Vsync:        v.GetBool("screen.vsync"),

		FovDegrees:       v.GetFloat64("camera.fovDegrees"),
		MoveSpeed:        v.GetFloat64("camera.moveSpeed"),
		TurnSpeed:        v.GetFloat64("camera.turnSpeed"),
		MouseSensitivity: v.GetFloat64("camera.mouseSensitivity"),
		ProjectileSpeed:  v.GetFloat64("projectile.speed"),

		WallTextures:      v.GetStringSlice("textures.walls"),
		FloorTexture:      v.GetString("textures.floor"),
		CeilingTexture:    v.GetString("textures.ceiling"),
		SpriteTexture:     v.GetString("textures.sprite"),
		ProjectileTexture: v.GetString("textures.projectile"),
	}
}

// internal render resolution after applying the render scale
func (c *Config) renderSize() (int, int) {
	w := int(float64(c.ScreenWidth) * c.RenderScale)
	h := int(float64(c.ScreenHeight) * c.RenderScale)
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return w, h
}
