package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultFormat используется, когда для исходного формата нет кодировщика
const DefaultFormat = "jpeg"

var (
	// ErrEmptyImage возвращается для пустого загруженного файла
	ErrEmptyImage = errors.New("empty image data")
	ErrDecode     = errors.New("decode image")
	ErrEncode     = errors.New("encode image")
)

// NormalizedImage изображение, перекодированное для отправки в модель
type NormalizedImage struct {
	Data           []byte
	Format         string // формат, в котором закодированы Data
	DetectedFormat string // формат, определённый декодером
	Width          int
	Height         int
}

// MIMEType возвращает MIME тип вида image/jpeg
func (n *NormalizedImage) MIMEType() string {
	return MIMETypeFor(n.Format)
}

// Base64 возвращает данные в base64 для передачи в JSON
func (n *NormalizedImage) Base64() string {
	return base64.StdEncoding.EncodeToString(n.Data)
}

type encodeFunc func(buf *bytes.Buffer, img image.Image) error

// encoders сопоставляет формат декодера с кодировщиком того же формата.
// webp декодируется, но кодировщика на чистом Go нет.
var encoders = map[string]encodeFunc{
	"jpeg": func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: 75})
	},
	"png": func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	},
	"gif": func(buf *bytes.Buffer, img image.Image) error {
		return gif.Encode(buf, img, nil)
	},
	"bmp": func(buf *bytes.Buffer, img image.Image) error {
		return bmp.Encode(buf, img)
	},
	"tiff": func(buf *bytes.Buffer, img image.Image) error {
		return tiff.Encode(buf, img, nil)
	},
}

// OutputFormat определяет формат перекодирования по формату декодера.
// Если формат неизвестен или для него нет кодировщика, возвращает DefaultFormat.
func OutputFormat(detected string) string {
	detected = strings.ToLower(strings.TrimSpace(detected))
	if _, ok := encoders[detected]; ok {
		return detected
	}
	return DefaultFormat
}

// MIMETypeFor строит MIME тип для формата изображения
func MIMETypeFor(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultFormat
	}
	return "image/" + format
}

// Normalize декодирует загруженные байты и перекодирует их в исходный формат,
// а если это невозможно - в JPEG.
func Normalize(data []byte) (*NormalizedImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyImage)
	}

	img, detected, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	format := OutputFormat(detected)
	encoded, err := Encode(img, format)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &NormalizedImage{
		Data:           encoded,
		Format:         format,
		DetectedFormat: detected,
		Width:          bounds.Dx(),
		Height:         bounds.Dy(),
	}, nil
}

// Encode кодирует изображение в указанный формат
func Encode(img image.Image, format string) ([]byte, error) {
	encode, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: no encoder for format %q", ErrEncode, format)
	}

	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w as %s: %w", ErrEncode, format, err)
	}
	return buf.Bytes(), nil
}
