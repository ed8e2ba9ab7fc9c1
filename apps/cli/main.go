package main

import (
	"os"

	"github.com/barasher/go-exiftool"
	"github.com/spf13/cobra"

	"github.com/webpify/webpify/internal/config"
	"github.com/webpify/webpify/internal/convert"
	"github.com/webpify/webpify/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "webpify [flags] FILE...",
	Short: "Convert images to WebP with optional watermarking",
	Long: `Webpify converts PNG and JPEG images to WebP, optionally overlaying an
image or text watermark, resizes them to fit a bounding box, and reports
the size savings per file and for the whole batch.`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	Run:     runConvert,
}

var (
	configPath       string
	quality          int
	prefix           string
	maxWidth         int
	maxHeight        int
	outputDir        string
	watermarkPath    string
	transparency     int
	text             string
	fontPath         string
	fontSize         int
	fontColor        string
	textTransparency int
	sharpen          bool
	keepMetadata     bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML file with default settings")
	flags.IntVar(&quality, "quality", 85, "Output WebP quality (0-100)")
	flags.StringVar(&prefix, "prefix", "", "Filename prefix for output files")
	flags.IntVar(&maxWidth, "width", 1024, "Max width to resize to")
	flags.IntVar(&maxHeight, "height", 1024, "Max height to resize to")
	flags.StringVar(&outputDir, "output-dir", "./webp", "Directory for converted files")
	flags.StringVar(&watermarkPath, "watermark", "", "Path to watermark image")
	flags.IntVar(&transparency, "transparency", 100, "Watermark transparency (0-255)")
	flags.StringVar(&text, "text", "", "Text watermark content")
	flags.StringVar(&fontPath, "font-path", "", "TTF font for the text watermark")
	flags.IntVar(&fontSize, "font-size", 36, "Text watermark font size")
	flags.StringVar(&fontColor, "font-color", "#FFFFFF", "Text color (#rrggbb or r,g,b)")
	flags.IntVar(&textTransparency, "text-transparency", 100, "Text watermark transparency (0-255)")
	flags.BoolVar(&sharpen, "sharpen", false, "Apply an unsharp mask after downscaling")
	flags.BoolVar(&keepMetadata, "keep-metadata", false, "Copy EXIF metadata to converted files (requires exiftool)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("Config load failed", "error", err)
		os.Exit(1)
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid settings", "error", err)
		os.Exit(1)
	}

	var metadata convert.MetadataCopier
	if cfg.KeepMetadata {
		et, err := exiftool.NewExiftool()
		if err != nil {
			logger.Warn("exiftool unavailable, metadata will not be copied", "error", err)
		} else {
			defer et.Close()
			metadata = convert.NewMetadataCopier(et)
		}
	}

	converter := convert.NewConverter(convert.NewWebPEncoder(), metadata, convert.NewReporter(os.Stdout))
	if _, err := converter.Convert(args, optionsFrom(cfg)); err != nil {
		logger.Error("Conversion failed", "error", err)
		os.Exit(1)
	}
}

// applyFlags overrides config file values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("quality") {
		cfg.Quality = quality
	}
	if flags.Changed("prefix") {
		cfg.Prefix = prefix
	}
	if flags.Changed("width") {
		cfg.MaxWidth = maxWidth
	}
	if flags.Changed("height") {
		cfg.MaxHeight = maxHeight
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("watermark") {
		cfg.Watermark = watermarkPath
	}
	if flags.Changed("transparency") {
		cfg.Transparency = transparency
	}
	if flags.Changed("text") {
		cfg.Text = text
	}
	if flags.Changed("font-path") {
		cfg.FontPath = fontPath
	}
	if flags.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if flags.Changed("font-color") {
		cfg.FontColor = fontColor
	}
	if flags.Changed("text-transparency") {
		cfg.TextTransparency = textTransparency
	}
	if flags.Changed("sharpen") {
		cfg.Sharpen = sharpen
	}
	if flags.Changed("keep-metadata") {
		cfg.KeepMetadata = keepMetadata
	}
}

// optionsFrom maps the merged settings onto pipeline options.
func optionsFrom(cfg config.Config) convert.Options {
	opts := convert.Options{
		Quality:      cfg.Quality,
		Prefix:       cfg.Prefix,
		OutputDir:    cfg.OutputDir,
		Resize:       convert.ResizeSpec{MaxWidth: cfg.MaxWidth, MaxHeight: cfg.MaxHeight, Sharpen: cfg.Sharpen},
		CopyMetadata: cfg.KeepMetadata,
	}
	if cfg.Watermark != "" {
		opts.Image = &convert.ImageWatermark{
			Path:         cfg.Watermark,
			Transparency: uint8(cfg.Transparency),
		}
	}
	if cfg.Text != "" {
		opts.Text = &convert.TextWatermark{
			Text:         cfg.Text,
			FontPath:     cfg.FontPath,
			FontSize:     cfg.FontSize,
			Color:        cfg.FontColor,
			Transparency: uint8(cfg.TextTransparency),
		}
	}
	return opts
}
