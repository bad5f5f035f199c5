package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	gldevice "github.com/richinsley/gltriangle/gldevice"
	glfwcontext "github.com/richinsley/gltriangle/glfwcontext"
	graphics "github.com/richinsley/gltriangle/graphics"
	headless "github.com/richinsley/gltriangle/headless"
	options "github.com/richinsley/gltriangle/options"
	renderer "github.com/richinsley/gltriangle/renderer"
)

var errConfig = errors.New("invalid configuration")

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		log.New(stderr, "", log.LstdFlags).Printf("%v", err)
	}
	return exitCode(err)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "gltriangle",
		Short:         "Draw a rotating colored triangle with OpenGL",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := options.NewViper(cmd.Flags())
			if err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("%w: %w", errConfig, err)
				}
			}
			opts, err := options.Load(v)
			if err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}
			return run(opts, stdout)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errConfig, err)
	})
	options.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "Read options from this file (yaml, json or toml)")
	return cmd
}

func run(opts *options.Options, stdout io.Writer) error {
	if opts.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.CPUProfile), profile.NoShutdownHook).Stop()
	}

	if opts.Headless {
		ctx, err := headless.NewHeadless(opts.Width, opts.Height)
		if err != nil {
			return fmt.Errorf("%w: %w", graphics.ErrWindow, err)
		}
		defer ctx.Shutdown()
		return render(ctx, headless.NewDevice(), opts, stdout)
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return err
	}
	defer ctx.Shutdown()

	return render(ctx, gldevice.New(), opts, stdout)
}

func render(ctx graphics.Context, dev renderer.Device, opts *options.Options, stdout io.Writer) error {
	r, err := renderer.NewRenderer(ctx, dev, opts, stdout)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	if err := r.InitScene(); err != nil {
		return err
	}

	log.Println("Starting render loop...")
	frames := r.Run()
	log.Printf("Render loop finished after %d frames", frames)
	return nil
}

// exitCode maps the failure kinds onto distinct non-zero statuses.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, graphics.ErrInit):
		return 1
	case errors.Is(err, graphics.ErrWindow):
		return 2
	case errors.Is(err, graphics.ErrLoader):
		return 3
	case errors.Is(err, errConfig):
		return 4
	}
	return 1
}
