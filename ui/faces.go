package ui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the ebitenui fonts, loaded once.
type faces struct {
	brand  text.Face
	normal text.Face
	bold   text.Face
	small  text.Face
}

var loadedFaces *faces

func loadFaces() *faces {
	if loadedFaces != nil {
		return loadedFaces
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	loadedFaces = &faces{
		brand:  &text.GoTextFace{Source: bold, Size: 20},
		normal: &text.GoTextFace{Source: regular, Size: 15},
		bold:   &text.GoTextFace{Source: bold, Size: 15},
		small:  &text.GoTextFace{Source: regular, Size: 13},
	}
	return loadedFaces
}
