package lib

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"maizonmarie_server/structs"
)

// EncodeMediaDataURL sniffs the MIME type of an uploaded file and encodes it as an
// embeddable data URL. Only image/* and video/* content is accepted; anything else
// is an explicit error rather than a silently broken gallery entry.
func EncodeMediaDataURL(data []byte) (string, structs.MediaType, error) {
	if len(data) == 0 {
		return "", "", ErrEmptyUpload
	}

	mime := mimetype.Detect(data)

	var mediaType structs.MediaType
	switch {
	case strings.HasPrefix(mime.String(), "image/"):
		mediaType = structs.MediaImage
	case strings.HasPrefix(mime.String(), "video/"):
		mediaType = structs.MediaVideo
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, mime.String())
	}

	url := "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
	return url, mediaType, nil
}
