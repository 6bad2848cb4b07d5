// Package assets loads and decodes the map document and height map for a scene.
// Files are read from an fs.FS concurrently; loading finishes before any scenery is built.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // height map decoders
	_ "image/png"
	"io/fs"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/scenery"
	"github.com/opd-ai/go-airboat/pkg/validation"
)

// ErrUnsupportedFormat is returned when a height map is in no registered image format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Manifest names the files making up a scene.
type Manifest struct {
	MapSVG    string
	HeightMap string
}

// Validate checks that every path is a clean relative asset path.
func (m Manifest) Validate() error {
	if err := validation.ValidateAssetPath(m.MapSVG); err != nil {
		return fmt.Errorf("map svg: %w", err)
	}
	if err := validation.ValidateAssetPath(m.HeightMap); err != nil {
		return fmt.Errorf("height map: %w", err)
	}
	return nil
}

// Bundle is a fully decoded scene.
type Bundle struct {
	Map     *scenery.SVGDocument
	Heights *scenery.HeightMap
	// HeightFormat is the image format name the height map was decoded as.
	HeightFormat string
	// Checksums maps each asset path to the xxhash of its bytes.
	Checksums map[string]uint64
}

// Seed derives a stable random seed from the bundle's contents.
func (b *Bundle) Seed() uint64 {
	paths := make([]string, 0, len(b.Checksums))
	for p := range b.Checksums {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	d := xxhash.New()
	for _, p := range paths {
		var buf [8]byte
		sum := b.Checksums[p]
		for i := range buf {
			buf[i] = byte(sum >> (8 * i))
		}
		_, _ = d.WriteString(p)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Loader reads scene assets from a file system.
type Loader struct {
	fsys   fs.FS
	logger *logging.Logger
}

// NewLoader creates a loader over fsys. A nil logger discards output.
func NewLoader(fsys fs.FS, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// Load reads and decodes both assets in parallel. The first failure cancels the other
// read and is returned.
func (l *Loader) Load(ctx context.Context, m Manifest) (*Bundle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	bundle := &Bundle{}
	var mapSum, heightSum uint64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := l.read(gctx, m.MapSVG)
		if err != nil {
			return err
		}
		doc, err := scenery.ParseSVG(bytes.NewReader(data))
		if err != nil {
			return logging.WrapError(err, "parse %s", m.MapSVG)
		}
		bundle.Map = doc
		mapSum = xxhash.Sum64(data)
		return nil
	})
	g.Go(func() error {
		data, err := l.read(gctx, m.HeightMap)
		if err != nil {
			return err
		}
		img, format, err := image.Decode(bytes.NewReader(data))
		if errors.Is(err, image.ErrFormat) {
			return fmt.Errorf("%s: %w", m.HeightMap, ErrUnsupportedFormat)
		}
		if err != nil {
			return logging.WrapError(err, "decode %s", m.HeightMap)
		}
		bundle.Heights = scenery.HeightMapFromImage(img)
		bundle.HeightFormat = format
		heightSum = xxhash.Sum64(data)
		return nil
	})
	if err := g.Wait(); err != nil {
		l.logger.Error(ctx, "asset loading failed", err, "map", m.MapSVG, "height_map", m.HeightMap)
		return nil, err
	}

	bundle.Checksums = map[string]uint64{m.MapSVG: mapSum, m.HeightMap: heightSum}
	l.logger.Info(ctx, "assets loaded",
		"map", m.MapSVG,
		"paths", len(bundle.Map.Paths()),
		"markers", len(bundle.Map.Markers()),
		"height_map", m.HeightMap,
		"height_format", bundle.HeightFormat,
		"height_size", fmt.Sprintf("%dx%d", bundle.Heights.Width(), bundle.Heights.Height()),
		"duration", time.Since(start).String(),
	)
	return bundle, nil
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, logging.WrapError(err, "read asset %s", path)
	}
	return data, nil
}
