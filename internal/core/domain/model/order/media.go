package order

import (
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrMediaFileIsNotConstructed is returned when using an improperly initialized MediaFile.
var ErrMediaFileIsNotConstructed = errs.NewValueIsRequiredError("MediaFile must be created via NewMediaFile")

// MediaFile is an immutable value object describing one attachment of an
// order: a stored file reference plus its MIME type. The order keeps its
// attachments as an ordered list.
type MediaFile struct {
	name     string
	url      string
	mimeType string

	guard guard.ConstructorGuard
}

// NewMediaFile creates an attachment descriptor. Name, URL, and MIME type are
// all required.
func NewMediaFile(name, url, mimeType string) (MediaFile, error) {
	if name == "" {
		return MediaFile{}, errs.NewValueIsRequiredError("name")
	}
	if url == "" {
		return MediaFile{}, errs.NewValueIsRequiredError("url")
	}
	if mimeType == "" {
		return MediaFile{}, errs.NewValueIsRequiredError("mimeType")
	}

	return MediaFile{
		name:     name,
		url:      url,
		mimeType: mimeType,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the file was created via NewMediaFile.
func (f MediaFile) Validate() error {
	return f.guard.Validate(ErrMediaFileIsNotConstructed)
}

// Name returns the original file name.
func (f MediaFile) Name() string {
	return f.name
}

// URL returns the stored file location.
func (f MediaFile) URL() string {
	return f.url
}

// MimeType returns the file's MIME type.
func (f MediaFile) MimeType() string {
	return f.mimeType
}

// IsVideo reports whether the attachment is a video file.
func (f MediaFile) IsVideo() bool {
	return strings.HasPrefix(f.mimeType, "video/")
}
