package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"sort"

	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrInvalidTexture is returned when an image decodes to a degenerate
// (zero-sized) texture or a sprite sheet too small for its frame grid.
var ErrInvalidTexture = errors.New("invalid texture")

// Texture is a loaded texture together with its sprite-sheet geometry.
type Texture struct {
	Image    *ebiten.Image
	Resource config.TextureResource

	// FrameWidth/FrameHeight are the size of one cell of the sprite sheet
	// (image size divided by cols/rows, truncated like integer division).
	// For plain images they equal the image size.
	FrameWidth  float64
	FrameHeight float64
}

// Width returns the full image width in pixels.
func (t *Texture) Width() float64 {
	return float64(t.Image.Bounds().Dx())
}

// Height returns the full image height in pixels.
func (t *Texture) Height() float64 {
	return float64(t.Image.Bounds().Dy())
}

// ResourceManager is responsible for centralized management of game resources.
// It loads every texture once before the game loop starts and releases them
// all in UnloadAll when the program exits.
//
// Error handling:
//   - A missing or undecodable file is returned as a wrapped error.
//   - A zero-sized image, or a sprite sheet whose frame would be zero-sized,
//     is returned as ErrInvalidTexture.
//
// Callers are expected to treat any error as fatal at startup; the game must
// never draw with an invalid texture.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the main
// goroutine before ebiten.RunGame.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS(), logger)
//	defer rm.UnloadAll()
//	if err := rm.LoadTextures(cfg.Textures); err != nil {
//	    return err
//	}
//	scarfy := rm.GetTexture(config.TextureScarfy)
type ResourceManager struct {
	fsys   fs.FS
	logger *log.Logger

	imageCache    map[string]*ebiten.Image     // Cache for loaded images: path -> Image
	textures      map[string]*Texture          // Loaded textures: resource ID -> Texture
	fontSource    *text.GoTextFaceSource       // Lazily created font source
	fontFaceCache map[float64]*text.GoTextFace // Text faces keyed by size
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The file system textures are read from (paths like "textures/scarfy.png").
//   - logger: Logger for load messages; nil uses the charmbracelet default logger.
func NewResourceManager(fsys fs.FS, logger *log.Logger) *ResourceManager {
	if logger == nil {
		logger = log.Default()
	}
	return &ResourceManager{
		fsys:          fsys,
		logger:        logger.WithPrefix("[ResourceManager]"),
		imageCache:    make(map[string]*ebiten.Image),
		textures:      make(map[string]*Texture),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file cannot be opened or decoded, and
// ErrInvalidTexture if the decoded image has no pixels.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s has zero size", ErrInvalidTexture, path)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// LoadTexture loads one manifest entry and computes its frame geometry.
func (rm *ResourceManager) LoadTexture(res config.TextureResource) (*Texture, error) {
	if tex, exists := rm.textures[res.ID]; exists {
		return tex, nil
	}

	img, err := rm.LoadImage(res.Path)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", res.ID, err)
	}

	bounds := img.Bounds()
	frameW := bounds.Dx() / res.GridCols()
	frameH := bounds.Dy() / res.GridRows()
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("%w: texture %q (%dx%d) too small for a %dx%d grid",
			ErrInvalidTexture, res.ID, bounds.Dx(), bounds.Dy(), res.GridCols(), res.GridRows())
	}

	tex := &Texture{
		Image:       img,
		Resource:    res,
		FrameWidth:  float64(frameW),
		FrameHeight: float64(frameH),
	}
	rm.textures[res.ID] = tex

	rm.logger.Debug("texture loaded", "id", res.ID, "path", res.Path,
		"size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"frame", fmt.Sprintf("%dx%d", frameW, frameH))
	return tex, nil
}

// LoadTextures loads the whole manifest, stopping at the first failure.
// Textures loaded before the failure stay cached and are released by UnloadAll.
func (rm *ResourceManager) LoadTextures(resources []config.TextureResource) error {
	for _, res := range resources {
		if _, err := rm.LoadTexture(res); err != nil {
			return err
		}
	}
	rm.logger.Info("textures loaded", "count", len(rm.textures), "ids", rm.TextureIDs())
	return nil
}

// GetTexture returns a loaded texture by resource ID, or nil.
func (rm *ResourceManager) GetTexture(id string) *Texture {
	return rm.textures[id]
}

// TextureIDs returns the IDs of all loaded textures, sorted.
func (rm *ResourceManager) TextureIDs() []string {
	ids := make([]string, 0, len(rm.textures))
	for id := range rm.textures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFont returns a text face of the given size using the bundled
// Press Start 2P font. Faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// UnloadAll releases every loaded image. It is safe to call more than once.
func (rm *ResourceManager) UnloadAll() {
	for path, img := range rm.imageCache {
		img.Deallocate()
		delete(rm.imageCache, path)
	}
	count := len(rm.textures)
	clear(rm.textures)
	if count > 0 {
		rm.logger.Info("textures unloaded", "count", count)
	}
}
