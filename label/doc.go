// Package label rasterizes text labels to offscreen images and keeps them
// in a bounded cache shared between replays.
//
// A label image is a pure function of its cache key: the caller derives
// the key from every style field that affects the pixels, and a cache hit
// returns the stored image without drawing again.
//
//	c := label.NewCache(label.WithCapacity(512))
//	img, hit, err := c.GetOrRender(key, func() (*label.Image, error) {
//	    return label.Render(label.Request{...}, surface.Default())
//	})
package label
