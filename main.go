package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrbrand/internal/handlers"
	"github.com/cristianadrielbraun/qrbrand/internal/qr"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qrbrand",
		Short:         "Generate styled QR codes with rounded modules, custom eyes and a center logo",
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

// runInteractive walks through the prompt flow: every value except the URL
// has a default taken by pressing Enter.
func runInteractive(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "--- Custom QR Code Generator ---")
	fmt.Fprintln(out, "Press Enter to use the default value.")
	fmt.Fprintln(out)

	cfg := render.DefaultConfig()

	var payload string
	for payload == "" {
		s, err := prompt(in, out, "Enter URL (required): ")
		if err != nil {
			return fmt.Errorf("URL is required")
		}
		if s == "" {
			fmt.Fprintln(out, "ERROR: URL cannot be empty.")
			continue
		}
		payload = s
	}

	if s, _ := prompt(in, out, fmt.Sprintf("Desired size (width) [%d]: ", cfg.TargetSize)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			// Intentional fallback, not a failure.
			fmt.Fprintf(out, "Invalid number. Using %d.\n", cfg.TargetSize)
		} else {
			cfg.TargetSize = n
		}
	}

	if s, _ := prompt(in, out, `Module color (e.g. red, #FFFFFF) [black]: `); s != "" {
		col, err := render.ParseColor(s)
		if err != nil {
			return fmt.Errorf("invalid color format %q: use names like \"red\" or hex like \"#FF0000\"", s)
		}
		cfg.FillColor = col
	}

	if s, _ := prompt(in, out, `Eye color (e.g. red, #FF0000) [black]: `); s != "" {
		col, err := render.ParseColor(s)
		if err != nil {
			return fmt.Errorf("invalid color format %q: use names like \"red\" or hex like \"#FF0000\"", s)
		}
		cfg.EyeColor = col
	}

	cfg.LogoPath = "logo.png"
	if s, _ := prompt(in, out, "Path to logo [logo.png]: "); s != "" {
		cfg.LogoPath = s
	}

	output := "my_custom_qr.png"
	if s, _ := prompt(in, out, "Output filename [my_custom_qr.png]: "); s != "" {
		output = s
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "...Generating QR code...")

	img, err := render.RenderToFile(payload, output, cfg)
	if err != nil {
		switch {
		case errors.Is(err, qr.ErrPayloadTooLarge):
			return fmt.Errorf("URL does not fit a version %d QR code: shorten it or configure a larger version", cfg.Version)
		case errors.Is(err, render.ErrLogoNotFound):
			return fmt.Errorf("logo file %q not found", cfg.LogoPath)
		default:
			return err
		}
	}

	b := img.Bounds()
	fmt.Fprintf(out, "Success! QR code (%dx%dpx) saved to: %s\n", b.Dx(), b.Dy(), output)
	return nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	s := strings.TrimSpace(line)
	if err != nil && s == "" {
		return "", err
	}
	return s, nil
}

func newServeCmd() *cobra.Command {
	var logoPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer over HTTP (GET /api/qr)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(gin.Logger())
			r.Use(gin.Recovery())

			cfg := render.DefaultConfig()
			cfg.LogoPath = logoPath

			h := handlers.New(cfg)
			api := r.Group("/api")
			{
				api.GET("/qr", h.QRCodeHandler)
			}
			r.GET("/healthz", h.Health)

			addr := getAddr()
			log.Printf("qrbrand listening on %s", addr)
			return r.Run(addr)
		},
	}
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo file rendered into every QR code")
	return cmd
}

func getAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
