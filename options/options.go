package options

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Background selects how the color buffer is cleared each frame.
const (
	BackgroundDefault = "default" // API default clear color
	BackgroundDark    = "dark"    // explicit dark gray
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "TRIANGLE"

type Options struct {
	Width        int
	Height       int
	Title        string
	Background   string
	SwapInterval int
	Frames       int    // close after this many frames; 0 runs until closed
	Headless     bool   // render without a display
	CPUProfile   string // directory for a CPU profile; empty disables profiling
}

// Default matches the constants the program has always shipped with.
func Default() Options {
	return Options{
		Width:        800,
		Height:       600,
		Title:        "OpenGL with GLFW",
		Background:   BackgroundDefault,
		SwapInterval: 1,
	}
}

// AddFlags declares one flag per option on fs, defaulted from Default.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("width", d.Width, "Initial window width")
	fs.Int("height", d.Height, "Initial window height")
	fs.String("title", d.Title, "Window title")
	fs.String("background", d.Background, "Clear color: default or dark")
	fs.Int("swap-interval", d.SwapInterval, "Screen updates to wait before swapping buffers")
	fs.Int("frames", d.Frames, "Exit after rendering this many frames (0 = until closed)")
	fs.Bool("headless", d.Headless, "Render without opening a window")
	fs.String("cpuprofile", d.CPUProfile, "Write a CPU profile into this directory")
}

// NewViper returns a viper bound to fs and to TRIANGLE_* environment variables.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// Load reads and validates the options held by v.
func Load(v *viper.Viper) (*Options, error) {
	o := &Options{
		Width:        v.GetInt("width"),
		Height:       v.GetInt("height"),
		Title:        v.GetString("title"),
		Background:   strings.ToLower(v.GetString("background")),
		SwapInterval: v.GetInt("swap-interval"),
		Frames:       v.GetInt("frames"),
		Headless:     v.GetBool("headless"),
		CPUProfile:   v.GetString("cpuprofile"),
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	switch o.Background {
	case BackgroundDefault, BackgroundDark:
	default:
		return fmt.Errorf("unknown background %q", o.Background)
	}
	if o.SwapInterval < 0 {
		return fmt.Errorf("invalid swap interval %d", o.SwapInterval)
	}
	if o.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", o.Frames)
	}
	return nil
}

// ClearColor returns the explicit clear color, or false when the API default
// should be left alone.
func (o *Options) ClearColor() (mgl32.Vec4, bool) {
	if o.Background == BackgroundDark {
		return mgl32.Vec4{0.1, 0.1, 0.1, 1.0}, true
	}
	return mgl32.Vec4{}, false
}
