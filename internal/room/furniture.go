package room

import (
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/pkg/math"
)

func tr() *scene.Transform { return scene.NewTransform() }

// unitBox is a unit cube centered at the origin with outward faces.
func unitBox(face scene.Node) scene.Node {
	return scene.NewGroup(
		place(tr().Translate(0, 0.5, 0).RotateX(-90), face),
		place(tr().Translate(-0.5, 0, 0).RotateY(-90), face),
		place(tr().Translate(0.5, 0, 0).RotateY(90), face),
		place(tr().Translate(0, -0.5, 0).RotateX(90), face),
		place(tr().Translate(0, 0, -0.5).RotateX(180), face),
		place(tr().Translate(0, 0, 0.5), face),
	)
}

// shell is the floor, the four walls and the ceiling of the 200x200x80 room.
func (b *builder) shell() scene.Node {
	walls := b.presentation(surface{
		material:  material(math.RGB(0.35, 0.225, 0.275), math.RGB(0.7, 0.55, 0.55), gray(0.4), gray(0), 16),
		texture:   "masonry-wall-texture.jpg",
		normalMap: "masonry-wall-normal.jpg",
		params:    texture.RepeatParams(),
		scale:     4,
	})
	walls.AddChild(place(tr().Translate(0, 100, 40).RotateX(90).Scale(200, 80, 1), b.square))
	walls.AddChild(place(tr().Translate(-100, 0, 40).RotateZ(90).RotateX(90).Scale(200, 80, 1), b.square))
	walls.AddChild(place(tr().Translate(100, 0, 40).RotateZ(-90).RotateX(90).Scale(200, 80, 1), b.square))
	walls.AddChild(place(tr().Translate(0, -100, 40).RotateZ(180).RotateX(90).Scale(200, 80, 1), b.square))

	floor := b.presentation(surface{
		material:  material(gray(0.15), gray(0.4), gray(0.2), gray(0), 5),
		texture:   "wood-floor-texture.jpg",
		normalMap: "wood-floor-normal.jpg",
		params:    texture.RepeatParams(),
		scale:     4,
	})
	floor.AddChild(place(tr().Scale(200, 200, 1), b.square))

	ceiling := b.presentation(surface{
		material:  material(gray(0.75), gray(1), gray(0.9), gray(0), 64),
		texture:   "ceiling-texture.jpg",
		normalMap: "ceiling-normal.jpg",
		params:    texture.RepeatParams(),
		scale:     8,
	})
	ceiling.AddChild(place(tr().Translate(0, 0, 80).RotateX(180).Scale(200, 200, 1), b.square))

	return scene.NewGroup(walls, floor, ceiling)
}

func (b *builder) fabric() *scene.Presentation {
	return b.presentation(surface{
		material:  material(math.RGB(0.1, 0, 0.2), math.RGB(0.2, 0, 0.4), gray(0.6), gray(0), 3),
		texture:   "fabric-texture.jpg",
		normalMap: "fabric-normal.jpg",
		params:    texture.ClampParams(),
	})
}

func (b *builder) wood() *scene.Presentation {
	return b.presentation(surface{
		material: material(math.RGB(0.275, 0.225, 0.075), math.RGB(0.55, 0.45, 0.15), gray(0.3), gray(0), 64),
		texture:  "grainy-wood-texture.jpg",
		params:   texture.ClampParams(),
	})
}

// seat builds a couch or chair: a cushion of the given width, two arms,
// a back and four legs. Arms and legs sit at x = ±armX.
func (b *builder) seat(width, armX, backWidth float32) scene.Node {
	fabric := b.fabric()
	fabric.AddChild(place(tr().Translate(0, 0, 10.5).Scale(width, 15, 12), b.box))
	fabric.AddChild(place(tr().Translate(armX, 0, 13.5).Scale(6, 15, 18), b.box))
	fabric.AddChild(place(tr().Translate(-armX, 0, 13.5).Scale(6, 15, 18), b.box))
	fabric.AddChild(place(tr().Translate(0, 10.5, 18).Scale(backWidth, 6, 27), b.box))

	wood := b.wood()
	for _, leg := range [][2]float32{{armX, 10.5}, {armX, -4.5}, {-armX, 10.5}, {-armX, -4.5}} {
		wood.AddChild(place(tr().Translate(leg[0], leg[1], 2.75).Scale(3, 3, 4.5), b.box))
	}
	return scene.NewGroup(fabric, wood)
}

func (b *builder) couch() scene.Node { return b.seat(45, 25.5, 57) }

func (b *builder) chair() scene.Node { return b.seat(15, 10.5, 27) }

// lamp is a floor lamp 40 units tall with a cone base, a thin post, a
// round cap and a textured shade.
func (b *builder) lamp() scene.Node {
	metal := b.presentation(surface{
		material: material(math.RGB(0.15, 0.15, 0.2), math.RGB(0.3, 0.3, 0.4), gray(0.2), gray(0), 15),
	})
	metal.AddChild(place(tr().Translate(0, 0, 1).Scale(1, 1, 2), b.lampBase))
	metal.AddChild(place(tr().Translate(0, 0, 21).Scale(1, 1, 38), b.lampPost))
	metal.AddChild(place(tr().Translate(0, 0, 40), b.lampCap))

	shade := b.presentation(surface{
		material: material(math.RGB(0.4, 0.4, 0.2), math.RGB(0.8, 0.8, 0.4), gray(0.3), gray(0.2), 5),
		texture:  "lampshade-texture.jpg",
		params:   texture.RepeatParams(),
	})
	shade.AddChild(place(tr().Translate(0, 0, 39.5).Scale(5, 5, 20), b.lampShade))

	return scene.NewGroup(metal, shade)
}

func (b *builder) rug() scene.Node {
	rug := b.presentation(surface{
		material:  material(gray(0.4), gray(0.75), gray(0.2), gray(0), 5),
		texture:   "rug-texture.jpg",
		normalMap: "rug-normal.jpg",
		params:    texture.RepeatParams(),
		scale:     2,
	})
	rug.AddChild(place(tr().Translate(0, 20, 1).RotateZ(45).Scale(60, 60, 1), b.square))
	return rug
}

// television is a 48x27 screen framed by four plastic bezels. The screen
// material is always textured and plays the video animation.
func (b *builder) television(cfg Config) scene.Node {
	plastic := b.presentation(surface{
		material: material(math.RGB(0, 0, 0), gray(0.2), gray(0.5), gray(0), 75),
	})
	plastic.AddChild(place(tr().Translate(-24.5, -1, 14.5).Scale(1, 2, 29), b.bezelBox))
	plastic.AddChild(place(tr().Translate(24.5, -1, 14.5).Scale(1, 2, 29), b.bezelBox))
	plastic.AddChild(place(tr().Translate(0, -1, 28.5).Scale(48, 2, 1), b.bezelBox))
	plastic.AddChild(place(tr().Translate(0, -1, 0.5).Scale(48, 2, 1), b.bezelBox))

	video := b.presentation(surface{
		material: material(
			math.RGBA(0.9, 0.9, 0.9, 0.9),
			math.RGBA(1, 1, 1, 0.9),
			math.RGBA(0.4, 0.4, 0.4, 0.9),
			math.RGBA(1, 1, 1, 0.75),
			15),
	})
	video.ForceTexture = true
	b.animation(video, cfg)
	video.AddChild(place(tr().Translate(0, -0.85, 14.5).RotateX(90).Scale(48, 27, 1), b.screen))
	b.video = video

	return scene.NewGroup(plastic, video)
}
