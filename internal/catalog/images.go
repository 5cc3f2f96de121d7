package catalog

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// imageExtensions is the fixed, ordered list of candidate extensions
// tried when an authored image path does not exist on disk. The order is
// the tie-break: the first existing candidate wins.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// defaultProductImageURL is the site path product images are served under.
const defaultProductImageURL = "/images/gear/products"

// ImageResolver maps authored image references to servable paths,
// probing the filesystem and falling back across known extensions.
type ImageResolver struct {
	publicDir  string // asset root for /-prefixed paths
	productDir string // directory bare filenames resolve under
	productURL string // site path corresponding to productDir
	logger     *slog.Logger
}

// NewImageResolver creates a resolver rooted at the site's public asset
// directory. Bare product image names resolve under productDir.
func NewImageResolver(publicDir, productDir string, logger *slog.Logger) *ImageResolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	productURL := defaultProductImageURL
	if rel, err := filepath.Rel(publicDir, productDir); err == nil && !strings.HasPrefix(rel, "..") {
		productURL = "/" + filepath.ToSlash(rel)
	}

	return &ImageResolver{
		publicDir:  publicDir,
		productDir: productDir,
		productURL: productURL,
		logger:     logger,
	}
}

// Resolve returns the servable path for an authored image reference, or
// "" when nothing exists on disk. Absolute URLs pass through unchanged.
// Callers must render a fallback for "", never fail.
func (r *ImageResolver) Resolve(image string) string {
	if image == "" {
		return ""
	}

	// Full URLs are served from elsewhere; nothing to probe.
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	var fsPath, sitePath string
	if strings.HasPrefix(image, "/") {
		fsPath = filepath.Join(r.publicDir, filepath.FromSlash(strings.TrimPrefix(image, "/")))
		sitePath = image
	} else {
		fsPath = filepath.Join(r.productDir, filepath.FromSlash(image))
		sitePath = path.Join(r.productURL, image)
	}

	if fileExists(fsPath) {
		return sitePath
	}

	// Retry with each known extension in place of the authored one.
	ext := filepath.Ext(fsPath)
	for _, candidate := range imageExtensions {
		if candidate == ext {
			continue
		}
		candidateFS := strings.TrimSuffix(fsPath, ext) + candidate
		if fileExists(candidateFS) {
			resolved := strings.TrimSuffix(sitePath, ext) + candidate
			r.logger.Warn("image resolved by extension fallback",
				"authored", image,
				"resolved", resolved,
			)
			return resolved
		}
	}

	r.logger.Warn("image not found on disk", "authored", image, "path", fsPath)
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
