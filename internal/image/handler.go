package image

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/lanternfly/service/internal/response"
)

// fileField is the multipart form field that carries the image.
const fileField = "file"

// Handler holds HTTP handlers for the upload and gallery endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new image Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadData struct {
	response.Envelope
	URL string `json:"url" example:"https://acct.blob.core.windows.net/lanternfly-images/20240102T000000-b.jpg"`
}

type galleryData struct {
	response.Envelope
	Gallery []string `json:"gallery"`
}

// Upload godoc
//
//	@Summary		Upload image
//	@Description	Store one image/* file (max 10 MB) under a timestamped name and return its public URL.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		200		{object}	uploadData
//	@Failure		400		{object}	response.Envelope
//	@Failure		413		{object}	response.Envelope
//	@Failure		415		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/api/v1/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	url, err := h.upload(r)
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, uploadData{Envelope: response.Success(), URL: url})
}

// Gallery godoc
//
//	@Summary		List gallery
//	@Description	Public URLs of every uploaded image, newest first.
//	@Tags			images
//	@Produce		json
//	@Success		200	{object}	galleryData
//	@Failure		500	{object}	response.Envelope
//	@Router			/api/v1/gallery [get]
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	urls, err := h.svc.Gallery(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, galleryData{Envelope: response.Success(), Gallery: urls})
}

// upload finds the file part in the multipart stream and hands it to the service
// without buffering the rest of the form.
func (h *Handler) upload(r *http.Request) (string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return "", newError(MissingFile, "Missing file", err)
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return "", newError(MissingFile, "Missing file", nil)
		}
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				return "", newError(PayloadTooLarge, response.TooLargeMessage(mbe.Limit), err)
			}
			return "", newError(MissingFile, "Missing file", err)
		}

		filename, ok := partFilename(part)
		if part.FormName() != fileField || !ok {
			part.Close()
			continue
		}
		defer part.Close()

		return h.svc.Upload(r.Context(), Upload{
			Filename:    filename,
			ContentType: partMediaType(part),
			Body:        part,
		})
	}
}

// partFilename returns the raw filename parameter of a part and whether one was
// sent at all. filename="" is present but empty.
func partFilename(p *multipart.Part) (string, bool) {
	_, params, err := mime.ParseMediaType(p.Header.Get("Content-Disposition"))
	if err != nil {
		return "", false
	}
	name, ok := params["filename"]
	return name, ok
}

// partMediaType returns the part's Content-Type lowercased and without
// parameters. An absent or malformed header yields "", which is not an image.
func partMediaType(p *multipart.Part) string {
	mediaType, _, err := mime.ParseMediaType(p.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mediaType
}

// writeError maps err to its status code and the error envelope.
func writeError(w http.ResponseWriter, err error) {
	response.Error(w, KindOf(err).Status(), clientMessage(err))
}

// clientMessage returns the message of an *Error; anything else is hidden.
func clientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
