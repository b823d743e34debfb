package geometry

import "github.com/Faultbox/roomview/pkg/math"

// minSine is the smallest edge angle sine a triangle needs to count as a
// face. Strip joins and the trough rim meet at coincident or collinear
// points, which rounding can leave a hair away from zero area.
const minSine = 1e-5

// flat reports whether the edges e1 and e2 span no area.
func flat(e1, e2 math.Vec3) bool {
	return e1.Cross(e2).Length() <= minSine*e1.Length()*e2.Length()
}

// CalcNormals replaces the vertex normals with the average of the unit
// face normals of the triangles using each vertex. Faces contribute with
// equal weight regardless of their angle at the vertex.
func CalcNormals(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3{}
	}

	v := m.Vertices
	m.Triangles(func(i0, i1, i2 uint16) {
		e1 := v[i1].Position.Sub(v[i0].Position)
		e2 := v[i2].Position.Sub(v[i0].Position)
		if flat(e1, e2) {
			return
		}
		n := e1.Cross(e2).Normalize()

		v[i0].Normal = v[i0].Normal.Add(n)
		v[i1].Normal = v[i1].Normal.Add(n)
		v[i2].Normal = v[i2].Normal.Add(n)
	})

	for i := range v {
		v[i].Normal = v[i].Normal.Normalize()
	}
}

// CalcTangents assigns each triangle's tangent and bitangent to its three
// vertices. Shared vertices keep the values of the last triangle visited.
// Triangles with no area in either position or texture space are skipped.
func CalcTangents(m *Mesh) {
	v := m.Vertices
	m.Triangles(func(i0, i1, i2 uint16) {
		dPos1 := v[i1].Position.Sub(v[i0].Position)
		dPos2 := v[i2].Position.Sub(v[i0].Position)
		if flat(dPos1, dPos2) {
			return
		}
		dUV1 := v[i1].TexCoord.Sub(v[i0].TexCoord)
		dUV2 := v[i2].TexCoord.Sub(v[i0].TexCoord)

		det := dUV1.X*dUV2.Y - dUV1.Y*dUV2.X
		if det == 0 {
			return
		}
		r := 1 / det

		tangent := dPos1.Scale(dUV2.Y).Sub(dPos2.Scale(dUV1.Y)).Scale(r)
		bitangent := dPos2.Scale(dUV1.X).Sub(dPos1.Scale(dUV2.X)).Scale(r)

		for _, i := range [3]uint16{i0, i1, i2} {
			v[i].Tangent = tangent
			v[i].Bitangent = bitangent
		}
	})
}
