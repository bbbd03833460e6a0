package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"marketsync/internal/errs"
	"marketsync/internal/gateway"
	"marketsync/internal/ledger"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Result describes a file written by Download.
type Result struct {
	Path        string            `json:"path"`
	Filename    string            `json:"filename"`
	Size        int64             `json:"size"`
	ContentType string            `json:"contentType,omitempty"`
	Gateway     string            `json:"gateway"`
	Attempts    []gateway.Attempt `json:"attempts"`
}

// Downloader saves a listing's asset to disk under its original filename.
type Downloader struct {
	logs     *zap.SugaredLogger
	resolver AssetResolver
	names    FilenameLookup
}

// NewDownloader builds a Downloader. names may be nil when no pinning
// service is configured.
func NewDownloader(logger *zap.SugaredLogger, resolver AssetResolver, names FilenameLookup) *Downloader {
	return &Downloader{
		logs:     logger,
		resolver: resolver,
		names:    names,
	}
}

// ResolveFilename picks the name to save a product's asset under: the
// description marker, then the pinning service, then the display name.
func (d *Downloader) ResolveFilename(ctx context.Context, p ledger.Product) string {
	if name := ExtractOriginalFilename(p.Description); name != "" {
		return SanitizeFilename(name)
	}

	loc, err := gateway.ParseURI(p.URI)
	if err != nil {
		return SanitizeFilename(nameWithExtension(p.Name))
	}

	if loc.Direct {
		if seg := loc.LastSegment(); seg != "" {
			return SanitizeFilename(seg)
		}
		return SanitizeFilename(nameWithExtension(p.Name))
	}

	if d.names != nil {
		name, err := d.names.OriginalFilename(ctx, loc.CID.String())
		if err != nil {
			d.logs.Warnw("pinning lookup failed", "product_id", p.ID, "cid", loc.CID.String(), "error", err)
		} else if name != "" {
			return SanitizeFilename(name)
		}
	}

	return SanitizeFilename(nameWithExtension(p.Name))
}

// Download streams the asset of p into dir. The bytes written are exactly
// those served by the gateway; an empty body is an error and leaves nothing
// behind. Existing files are never overwritten.
func (d *Downloader) Download(ctx context.Context, p ledger.Product, dir string) (Result, error) {
	if strings.TrimSpace(p.URI) == "" {
		return Result{}, errs.ErrNoURIProvided
	}

	asset, err := d.resolver.Resolve(ctx, p.URI)
	if err != nil {
		return Result{}, fmt.Errorf("resolving asset of product %d: %w", p.ID, err)
	}
	defer asset.Body.Close()

	filename := d.ResolveFilename(ctx, p)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating download dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".marketsync-*.part")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	size, err := io.Copy(tmp, asset.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, fmt.Errorf("streaming asset from %s: %w", asset.Gateway, err)
	}

	if size == 0 {
		_ = os.Remove(tmpPath)
		return Result{}, fmt.Errorf("product %d via %s: %w", p.ID, asset.Gateway, errs.ErrEmptyAsset)
	}

	final, err := place(tmpPath, dir, filename)
	if err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, err
	}

	d.logs.Infow("asset downloaded",
		"product_id", p.ID,
		"path", final,
		"size", humanize.Bytes(uint64(size)),
		"gateway", asset.Gateway,
		"attempts", len(asset.Attempts))

	return Result{
		Path:        final,
		Filename:    filepath.Base(final),
		Size:        size,
		ContentType: asset.ContentType,
		Gateway:     asset.Gateway,
		Attempts:    asset.Attempts,
	}, nil
}

// place links tmp under the first free variant of name in dir and drops
// tmp. The link fails when the target exists, so a file created between
// attempts is never replaced.
func place(tmp, dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < 1000; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		target := filepath.Join(dir, candidate)
		err := os.Link(tmp, target)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("moving download into place: %w", err)
		}
		if err := os.Remove(tmp); err != nil {
			return "", fmt.Errorf("removing temp file: %w", err)
		}
		return target, nil
	}
	return "", fmt.Errorf("no free filename for %s in %s", name, dir)
}
