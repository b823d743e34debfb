package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: data truncated")

// tgaReader walks the pixel stream of a TGA file and writes into dst,
// honoring the descriptor's vertical origin.
type tgaReader struct {
	dst         *image.RGBA
	data        []byte
	pos         int
	bytesPerPix int
	topDown     bool
	n           int // pixels written
}

// DecodeTGA decodes uncompressed or RLE true-color (24/32 bit) and
// grayscale (8 bit) TGA images.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header too short (%d bytes)", len(data))
	}
	idLength := int(data[0])
	if data[1] != 0 {
		return nil, fmt.Errorf("tga: color-mapped images are not supported")
	}
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])

	gray := imageType == tgaGray || imageType == tgaGrayRLE
	switch {
	case imageType != tgaTrueColor && imageType != tgaTrueColorRLE && !gray:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported depth %d", bpp)
	}
	if 18+idLength > len(data) {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		dst:         image.NewRGBA(image.Rect(0, 0, width, height)),
		data:        data[18+idLength:],
		bytesPerPix: bpp / 8,
		topDown:     data[17]&0x20 != 0,
	}

	var err error
	if imageType == tgaTrueColorRLE || imageType == tgaGrayRLE {
		err = r.readRLE()
	} else {
		err = r.readRaw(width * height)
	}
	if err != nil {
		return nil, err
	}
	return r.dst, nil
}

func (r *tgaReader) total() int {
	b := r.dst.Bounds()
	return b.Dx() * b.Dy()
}

// next decodes one BGR(A) or gray pixel.
func (r *tgaReader) next() (color.RGBA, error) {
	if r.pos+r.bytesPerPix > len(r.data) {
		return color.RGBA{}, errTGATruncated
	}
	p := r.data[r.pos : r.pos+r.bytesPerPix]
	r.pos += r.bytesPerPix
	switch r.bytesPerPix {
	case 1:
		return color.RGBA{R: p[0], G: p[0], B: p[0], A: 255}, nil
	case 3:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}, nil
	default:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}, nil
	}
}

func (r *tgaReader) put(c color.RGBA) {
	w := r.dst.Bounds().Dx()
	x, y := r.n%w, r.n/w
	if !r.topDown {
		y = r.dst.Bounds().Dy() - 1 - y
	}
	r.dst.SetRGBA(x, y, c)
	r.n++
}

func (r *tgaReader) readRaw(count int) error {
	for i := 0; i < count && r.n < r.total(); i++ {
		c, err := r.next()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	for r.n < r.total() {
		if r.pos >= len(r.data) {
			return errTGATruncated
		}
		header := r.data[r.pos]
		r.pos++
		count := int(header&0x7f) + 1
		if header&0x80 == 0 {
			if err := r.readRaw(count); err != nil {
				return err
			}
			continue
		}
		c, err := r.next()
		if err != nil {
			return err
		}
		for i := 0; i < count && r.n < r.total(); i++ {
			r.put(c)
		}
	}
	return nil
}
