package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

var (
	goTextOnce   sync.Once
	goTextSource *text.GoTextFaceSource
	goTextErr    error
)

// LoadDefaultFonts registers the Go fonts used by the overlays
func LoadDefaultFonts() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 14); err != nil {
		return err
	}
	return LoadFontWithSize(Mono, gomono.TTF, 12)
}

// GoTextFace returns a text/v2 face of the Go regular font, as used by
// ebitenui widgets and the intro title.
func GoTextFace(size float64) (text.Face, error) {
	goTextOnce.Do(func() {
		goTextSource, goTextErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if goTextErr != nil {
			goTextErr = fmt.Errorf("load go text face: %w", goTextErr)
		}
	})
	if goTextErr != nil {
		return nil, goTextErr
	}
	return &text.GoTextFace{Source: goTextSource, Size: size}, nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether a face was registered under name
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
