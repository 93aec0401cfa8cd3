package guidraw

import "github.com/hubastard/imbridge/engine/gfx"

// TextureResolver maps a draw command's texture id back to a texture.
type TextureResolver interface {
	Resolve(id TextureID) (gfx.Texture, bool)
}

// TextureRegistry maps opaque ids to live textures for one rendering
// session. Entries are never evicted.
//
// The registry is not safe for concurrent use; it is written while a frame
// begins and read while that frame's batches are built, both on the render
// thread.
type TextureRegistry struct {
	textures map[TextureID]gfx.Texture
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{textures: make(map[TextureID]gfx.Texture, 4)}
}

// Register returns the id for t, derived from its native handle, and
// stores the mapping. Registering the same texture again returns the same
// id. A nil texture yields the zero id and is not stored.
func (r *TextureRegistry) Register(t gfx.Texture) TextureID {
	if t == nil {
		return 0
	}
	id := TextureID(t.Handle())
	r.textures[id] = t
	return id
}

// Resolve returns the texture registered under id. Unknown ids are not an
// error: such commands draw untextured.
func (r *TextureRegistry) Resolve(id TextureID) (gfx.Texture, bool) {
	t, ok := r.textures[id]
	return t, ok
}

func (r *TextureRegistry) Len() int { return len(r.textures) }
