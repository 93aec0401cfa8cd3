package guidraw

import (
	"fmt"

	"github.com/hubastard/imbridge/engine/gfx"
)

// MeshUpdater mirrors a frame's draw lists into a single dynamic mesh with
// one sub-mesh per draw command.
type MeshUpdater struct {
	subMeshes []gfx.SubMesh
}

// Update replaces the contents of mesh with dd. Lists are laid out back to
// back in list order and each command's ranges are rebased onto the list's
// position in the shared buffers. Culling is not applied here: the mesh
// always has exactly dd.CommandCount() sub-meshes.
//
// Bounds are never computed; the mesh is only ever used for GUI drawing.
func (u *MeshUpdater) Update(mesh gfx.DynamicMesh, dd *DrawData) error {
	mesh.Clear()
	if dd == nil || !dd.Valid {
		return mesh.Upload()
	}

	n := dd.CommandCount()
	if cap(u.subMeshes) < n {
		u.subMeshes = make([]gfx.SubMesh, 0, n)
	}
	u.subMeshes = u.subMeshes[:0]

	mesh.SetVertexBufferParams(dd.TotalVertexCount(), VertexLayout)
	mesh.SetIndexBufferParams(dd.TotalIndexCount(), gfx.IndexUint16)

	vtxOffset, idxOffset := 0, 0
	for li := range dd.Lists {
		list := &dd.Lists[li]
		if err := mesh.SetVertexBufferData(vertexBytes(list.Vertices), vtxOffset); err != nil {
			return fmt.Errorf("draw list %d vertices: %w", li, err)
		}
		if err := mesh.SetIndexBufferData(list.Indices, idxOffset); err != nil {
			return fmt.Errorf("draw list %d indices: %w", li, err)
		}

		for _, cmd := range list.Commands {
			u.subMeshes = append(u.subMeshes, gfx.SubMesh{
				Topology:   gfx.Triangles,
				IndexStart: idxOffset + int(cmd.IndexOffset),
				IndexCount: int(cmd.ElementCount),
				BaseVertex: vtxOffset + int(cmd.VertexOffset),
			})
		}

		vtxOffset += len(list.Vertices)
		idxOffset += len(list.Indices)
	}

	if err := mesh.SetSubMeshes(u.subMeshes); err != nil {
		return fmt.Errorf("sub-meshes: %w", err)
	}
	return mesh.Upload()
}
