package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache holds tile posters in memory, with remote images also kept on
// disk. A source is either a local file path or an http(s) URL.
type ImageCache struct {
	cacheDir string
	memory   sync.Map // src -> *ebiten.Image
	loading  sync.Map // src -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		sem:      make(chan struct{}, 6),
	}, nil
}

// Get returns a loaded image, or nil.
func (ic *ImageCache) Get(src string) *ebiten.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync loads src in the background. callback runs on a worker goroutine
// once the image is ready; it is not called on failure.
func (ic *ImageCache) LoadAsync(src string, callback func(*ebiten.Image)) {
	if src == "" {
		return
	}
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(*ebiten.Image))
		return
	}

	entry := &loadEntry{callbacks: []func(*ebiten.Image){callback}}
	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		e := existing.(*loadEntry)
		e.mu.Lock()
		e.callbacks = append(e.callbacks, callback)
		e.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(src)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.Decode(src)
		if err != nil {
			log.Printf("Failed to load image %s: %v", src, err)
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		ic.memory.Store(src, eimg)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

// Prefetch starts loading src without waiting for it. Read it back with Get.
func (ic *ImageCache) Prefetch(src string) {
	ic.LoadAsync(src, func(*ebiten.Image) {})
}

// Decode reads src into a standard image, going through the disk cache for
// remote sources.
func (ic *ImageCache) Decode(src string) (image.Image, error) {
	if !remote(src) {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", src, err)
		}
		return img, nil
	}

	diskPath := ic.diskPath(src)
	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, fetch again.
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

func remote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (ic *ImageCache) diskPath(src string) string {
	h := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}
