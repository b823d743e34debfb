package scene

import "github.com/Faultbox/roomview/internal/engine/camera"

// Camera sets the view and projection for its subtree.
type Camera struct {
	children
	viewer *camera.Camera
}

// NewCamera wraps a viewer. The viewer is shared, not copied, so the
// application can move it between passes.
func NewCamera(viewer *camera.Camera) *Camera {
	return &Camera{viewer: viewer}
}

// Viewer returns the wrapped camera.
func (c *Camera) Viewer() *camera.Camera { return c.viewer }

// Draw emits the camera, draws the children and restores the prior view.
func (c *Camera) Draw(s *State) {
	prevView, prevProj, prevEye := s.View, s.Projection, s.Eye

	s.View = c.viewer.ViewMatrix()
	s.Projection = c.viewer.ProjectionMatrix()
	s.Eye = c.viewer.Position()
	s.Renderer.SetCamera(s.Eye, s.View, s.Projection)

	c.drawChildren(s)

	s.View, s.Projection, s.Eye = prevView, prevProj, prevEye
	s.Renderer.SetCamera(prevEye, prevView, prevProj)
}
