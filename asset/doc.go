// Package asset implements the texture and font storages consulted by graphics.RendererPool.
//
// Both storages read from an fs.FS rooted at the asset directory and cache every
// resource on first use, so a resource returned once stays valid, and shared, for the
// lifetime of the storage. Lookups that cannot be satisfied wrap
// graphics.ErrTextureNotAvailable or graphics.ErrFontNotAvailable.
package asset
