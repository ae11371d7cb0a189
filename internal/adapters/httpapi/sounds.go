package httpapi

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/services"
)

// soundFormField is the multipart field carrying uploaded files
const soundFormField = "sound"

func (c *controller) handleGetSounds(w http.ResponseWriter, r *http.Request) {
	assets, err := c.deps.Sounds.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, assets)
}

func (c *controller) handlePostSounds(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadFiles*(services.MaxSoundSize+(1<<20)))
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		jsonError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[soundFormField]
	if len(headers) == 0 {
		jsonError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	if len(headers) > maxUploadFiles {
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("at most %d files per upload", maxUploadFiles))
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			logError(r, "failed to open uploaded file", "name", fh.Filename, "error", err)
			continue
		}
		defer f.Close()
		files = append(files, uploadFile(fh, f))
	}

	results := c.deps.Sounds.Upload(r.Context(), files)

	stored := 0
	for _, res := range results {
		if res.OK() {
			stored++
		}
	}
	if stored == 0 {
		jsonStatus(w, http.StatusBadRequest, Error{Error: "no valid sound files", Files: results})
		return
	}
	jsonEncode(w, UploadResponse{Files: results, Success: true})
}

func uploadFile(fh *multipart.FileHeader, f multipart.File) services.UploadFile {
	return services.UploadFile{
		Content:     f,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}
}

func (c *controller) handleDeleteSound(w http.ResponseWriter, r *http.Request) {
	if err := c.deps.Sounds.Delete(r.Context(), r.PathValue("filename")); err != nil {
		writeError(w, r, err)
		return
	}
	jsonEncode(w, SuccessResponse{Success: true})
}

func (c *controller) handleGetSoundPlay(w http.ResponseWriter, r *http.Request) {
	rc, asset, err := c.deps.Sounds.Open(r.Context(), r.PathValue("filename"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	if ct := domain.SoundContentType(asset.Filename); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	http.ServeContent(w, r, asset.Filename, asset.ModifiedAt, rc)
}
