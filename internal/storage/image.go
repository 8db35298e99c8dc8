package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	avatarSize    = 256
	avatarQuality = 85
)

// EncodeAvatarWebP decodifica a imagem enviada (jpeg, png ou webp),
// reduz para o quadrado do avatar e reencoda em webp.
func EncodeAvatarWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
