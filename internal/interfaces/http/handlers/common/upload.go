// Package common provides shared HTTP handler utilities.
package common

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/content"
	"litreview/internal/shared/errors"
)

// ImageField is the multipart field carrying a ticket image.
const ImageField = "image"

// ImageFromForm opens the optional image part of a multipart request. It
// returns a nil upload when the request carries no image; the returned close
// func must be called once the upload has been consumed.
func ImageFromForm(c *gin.Context) (*content.ImageUpload, func(), error) {
	noop := func() {}

	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}

	header, err := c.FormFile(ImageField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, errors.NewValidationError("invalid image upload", err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.NewValidationError("invalid image upload", err.Error())
	}

	upload := &content.ImageUpload{
		Filename: header.Filename,
		Content:  file,
	}
	return upload, func() { _ = file.Close() }, nil
}
