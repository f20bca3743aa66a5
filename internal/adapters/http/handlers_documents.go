package web

import (
	"errors"
	"net/http"
	"strings"

	"ratedesk/internal/application/orchestrators"
)

// maxUploadBytes caps multipart memory buffering for document uploads.
const maxUploadBytes = 32 << 20 // 32 MB

// handleCreateFolder handles POST /api/documents/create-folder.
func handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		FolderName string `json:"folderName"`
		ParentPath string `json:"parentPath"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.FolderName) == "" {
		http.Error(w, "missing folderName", http.StatusBadRequest)
		return
	}

	input := orchestrators.CreateFolderInput{
		FolderName: body.FolderName,
		ParentPath: body.ParentPath,
	}
	result, err := orchestrators.ExecuteCreateFolder(r.Context(), input, orchestrators.DocumentDeps{Blob: blobStore})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"folder": map[string]any{
			"path":     result.Path,
			"pathname": result.Pathname,
		},
	})
}

// handleDeleteDocument handles POST /api/documents/delete.
func handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		Pathname string `json:"pathname"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Pathname) == "" {
		http.Error(w, "missing pathname", http.StatusBadRequest)
		return
	}

	input := orchestrators.DeleteDocumentInput{Pathname: body.Pathname}
	deleted, err := orchestrators.ExecuteDeleteDocument(r.Context(), input, orchestrators.DocumentDeps{Blob: blobStore})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}

// handleMoveDocument handles POST /api/documents/move.
func handleMoveDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	// RemoveFromOldParent defaults to true when omitted: a move deletes the
	// source. Clients may send false to copy instead.
	body := struct {
		FileID              string `json:"fileId"`
		NewParentID         string `json:"newParentId"`
		RemoveFromOldParent bool   `json:"removeFromOldParent"`
	}{RemoveFromOldParent: true}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.FileID) == "" || strings.TrimSpace(body.NewParentID) == "" {
		http.Error(w, "missing fileId or newParentId", http.StatusBadRequest)
		return
	}

	input := orchestrators.MoveDocumentInput{
		Pathname:   body.FileID,
		NewParent:  body.NewParentID,
		KeepSource: !body.RemoveFromOldParent,
	}
	if err := orchestrators.ExecuteMoveDocument(r.Context(), input, orchestrators.DocumentDeps{Blob: blobStore}); err != nil {
		writeDocumentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleRenameDocument handles POST /api/documents/rename.
func handleRenameDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		FileID  string `json:"fileId"`
		NewName string `json:"newName"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.FileID) == "" || strings.TrimSpace(body.NewName) == "" {
		http.Error(w, "missing fileId or newName", http.StatusBadRequest)
		return
	}

	input := orchestrators.RenameDocumentInput{
		Pathname: body.FileID,
		NewName:  body.NewName,
	}
	if err := orchestrators.ExecuteRenameDocument(r.Context(), input, orchestrators.DocumentDeps{Blob: blobStore}); err != nil {
		writeDocumentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleUploadDocument handles POST /api/documents/upload (multipart).
func handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	input := orchestrators.UploadDocumentInput{
		FileName:    header.Filename,
		FolderPath:  r.FormValue("folderPath"),
		Body:        file,
		ContentType: header.Header.Get("Content-Type"),
	}
	obj, err := orchestrators.ExecuteUploadDocument(r.Context(), input, orchestrators.DocumentDeps{Blob: blobStore})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"blob": map[string]any{
			"url":      obj.URL,
			"pathname": obj.Pathname,
		},
	})
}

// writeDocumentError maps move/rename failures onto status codes: bad input
// is 400, a source that is neither file nor folder is 404, anything else 500.
func writeDocumentError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var notFound *orchestrators.NotFoundError
	if errors.As(err, &notFound) {
		http.Error(w, notFound.Error(), http.StatusNotFound)
		return
	}
	internalError(w, err)
}
