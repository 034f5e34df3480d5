// Package attachment converts uploaded files into the self-describing
// encoded form the CRM API stores: base64 data URIs with a resolved MIME
// type. Images are downscaled and recompressed to bound payload size;
// other files pass through unmodified within a hard size ceiling.
package attachment

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/trinextgen/backoffice/internal/model"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// maxImageWidth bounds re-encoded images; height follows the aspect
	// ratio and images already narrower are never upscaled.
	maxImageWidth = 1200

	jpegQuality = 70

	// maxFileSize is the ceiling for non-image files, which cannot be
	// recompressed.
	maxFileSize = 5 << 20 // 5 MB
)

// Input is one file selected for upload.
type Input struct {
	Name string
	Data []byte
}

// Rejection records a single file that failed encoding. Sibling files in
// the same batch are unaffected.
type Rejection struct {
	Name string `json:"name"`
	Err  string `json:"error"`
}

// EncodeAll encodes a batch of files. Each file succeeds or fails on its
// own; one oversized or corrupt file never aborts the rest.
func EncodeAll(files []Input) ([]model.ProjectFile, []Rejection) {
	encoded := make([]model.ProjectFile, 0, len(files))
	var rejected []Rejection
	for _, f := range files {
		pf, err := Encode(f.Name, f.Data)
		if err != nil {
			rejected = append(rejected, Rejection{Name: f.Name, Err: err.Error()})
			continue
		}
		encoded = append(encoded, pf)
	}
	return encoded, rejected
}

// Encode converts one file into a ProjectFile. Images (sniffed from content,
// not filename) are decoded, downscaled to maxImageWidth and re-encoded as
// JPEG; anything else is accepted as-is when within the size ceiling.
func Encode(name string, data []byte) (model.ProjectFile, error) {
	mime := http.DetectContentType(data)
	if strings.HasPrefix(mime, "image/") {
		return encodeImage(name, data)
	}
	if len(data) > maxFileSize {
		return model.ProjectFile{}, fmt.Errorf("%s exceeds the 5 MB limit for non-image files", name)
	}
	return model.ProjectFile{
		Name: name,
		Type: mime,
		Data: dataURI(mime, data),
	}, nil
}

func encodeImage(name string, data []byte) (model.ProjectFile, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return model.ProjectFile{}, fmt.Errorf("%s: decode image: %w", name, err)
	}

	bounds := src.Bounds()
	if w := bounds.Dx(); w > maxImageWidth {
		h := bounds.Dy() * maxImageWidth / w
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return model.ProjectFile{}, fmt.Errorf("%s: encode jpeg: %w", name, err)
	}
	return model.ProjectFile{
		Name: jpegName(name),
		Type: "image/jpeg",
		Data: dataURI("image/jpeg", buf.Bytes()),
	}, nil
}

// jpegName swaps the original extension for .jpg, since every image leaves
// the encoder as JPEG regardless of input format.
func jpegName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i] + ".jpg"
	}
	return name + ".jpg"
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
