package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

type FontName string

const (
	Title FontName = "title"
	Small FontName = "small"
)

var faces = map[FontName]font.Face{}

// LoadDefaults parses the bundled Go Bold font at the sizes the overlays use.
func LoadDefaults() {
	MustLoad(Title, gobold.TTF, 48)
	MustLoad(Small, gobold.TTF, 10)
}

func MustLoad(name FontName, ttf []byte, size float64) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
}

// Get panics if the face was never loaded.
func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("font %s not loaded", f))
	}
	return face
}
