package orchestrators

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ratedesk/internal/adapters/blob"
	"ratedesk/internal/domain/document"
)

// DocumentDeps holds dependencies for document orchestrators.
type DocumentDeps struct {
	Blob blob.Store
}

// --- Create Folder ---

// CreateFolderInput carries input for creating a folder.
type CreateFolderInput struct {
	FolderName string
	ParentPath string // optional; empty means the document root
}

// CreateFolderResult describes the created folder.
type CreateFolderResult struct {
	Path     string // folder path with the placeholder suffix stripped
	Pathname string // pathname of the stored placeholder object
}

// ExecuteCreateFolder writes a placeholder object so the folder exists in the
// flat blob namespace.
// PRE: FolderName is a single path segment
// POST: Placeholder stored at <parent>/<name>/.gitkeep
func ExecuteCreateFolder(ctx context.Context, input CreateFolderInput, deps DocumentDeps) (CreateFolderResult, error) {
	if err := document.ValidateName(input.FolderName); err != nil {
		return CreateFolderResult{}, err
	}

	folderPath := document.JoinPath(input.ParentPath, input.FolderName)
	placeholder := document.PlaceholderFor(folderPath)

	obj, err := deps.Blob.Put(ctx, placeholder, strings.NewReader(""), "application/octet-stream")
	if err != nil {
		return CreateFolderResult{}, fmt.Errorf("create folder %q: %w", folderPath, err)
	}

	slog.Info("document_event", "event", "folder_created", "folder", folderPath)
	return CreateFolderResult{
		Path:     document.FolderFromPlaceholder(obj.Pathname),
		Pathname: obj.Pathname,
	}, nil
}

// --- Delete Document or Folder ---

// DeleteDocumentInput carries input for deleting a document or folder.
type DeleteDocumentInput struct {
	Pathname string
}

// ExecuteDeleteDocument deletes the blob at pathname, or, when no blob has
// exactly that pathname, every blob under it as a folder. Returns the number
// of objects deleted.
//
// The folder case is list-then-delete and is not atomic: an object written
// under the prefix between the list and the deletes may survive.
// POST: Returns the count of deleted objects; a mid-loop delete failure
// aborts and reports the count so far in the error
func ExecuteDeleteDocument(ctx context.Context, input DeleteDocumentInput, deps DocumentDeps) (int, error) {
	pathname, err := document.CleanPath(input.Pathname)
	if err != nil {
		return 0, err
	}

	exists, err := deps.Blob.Exists(ctx, pathname)
	if err != nil {
		return 0, fmt.Errorf("check %q: %w", pathname, err)
	}

	if exists {
		if err := deps.Blob.Delete(ctx, pathname); err != nil {
			return 0, fmt.Errorf("delete %q: %w", pathname, err)
		}
		slog.Info("document_event", "event", "file_deleted", "pathname", pathname)
		return 1, nil
	}

	// Folder case: everything sharing the prefix is a member.
	members, err := deps.Blob.ListPrefix(ctx, document.FolderPrefix(pathname))
	if err != nil {
		return 0, fmt.Errorf("list folder %q: %w", pathname, err)
	}

	deleted := 0
	for _, obj := range members {
		if err := deps.Blob.Delete(ctx, obj.Pathname); err != nil {
			return deleted, fmt.Errorf("delete %q after %d of %d: %w", obj.Pathname, deleted, len(members), err)
		}
		deleted++
	}

	slog.Info("document_event", "event", "folder_deleted", "folder", pathname, "deleted", deleted)
	return deleted, nil
}

// --- Upload Document ---

// UploadDocumentInput carries input for uploading a file.
type UploadDocumentInput struct {
	FileName    string
	FolderPath  string // optional
	Body        io.Reader
	ContentType string
}

// ExecuteUploadDocument stores the file under the destination path and
// returns the resulting object.
// PRE: FileName is a single path segment; Body is readable
// POST: Object stored at <folderPath>/<fileName>
func ExecuteUploadDocument(ctx context.Context, input UploadDocumentInput, deps DocumentDeps) (document.Object, error) {
	if err := document.ValidateName(input.FileName); err != nil {
		if err == document.ErrEmptyFolderName {
			return document.Object{}, document.ErrEmptyFileName
		}
		return document.Object{}, err
	}

	pathname := document.JoinPath(input.FolderPath, input.FileName)
	obj, err := deps.Blob.Put(ctx, pathname, input.Body, input.ContentType)
	if err != nil {
		return document.Object{}, fmt.Errorf("upload %q: %w", pathname, err)
	}

	slog.Info("document_event", "event", "file_uploaded", "pathname", obj.Pathname, "size", obj.Size)
	return obj, nil
}

// --- Move Document or Folder ---

// MoveDocumentInput carries input for moving a file or folder.
type MoveDocumentInput struct {
	Pathname   string // file or folder to move
	NewParent  string // destination folder path
	KeepSource bool   // copy instead of move: leave the originals in place
}

// ExecuteMoveDocument relocates a file, or a folder subtree, under NewParent.
// POST: Every affected object exists at its new pathname; unless KeepSource,
// the old pathnames are gone
func ExecuteMoveDocument(ctx context.Context, input MoveDocumentInput, deps DocumentDeps) error {
	src, err := document.CleanPath(input.Pathname)
	if err != nil {
		return err
	}
	dst := document.MovedPath(src, input.NewParent)
	if dst == src {
		return nil
	}
	event := "moved"
	if input.KeepSource {
		event = "copied"
	}
	return rewriteTree(ctx, deps, src, dst, event, input.KeepSource)
}

// --- Rename Document or Folder ---

// RenameDocumentInput carries input for renaming a file or folder.
type RenameDocumentInput struct {
	Pathname string
	NewName  string
}

// ExecuteRenameDocument replaces the last path segment of a file, or of a
// folder and all its members.
// PRE: NewName is a single path segment
func ExecuteRenameDocument(ctx context.Context, input RenameDocumentInput, deps DocumentDeps) error {
	src, err := document.CleanPath(input.Pathname)
	if err != nil {
		return err
	}
	if err := document.ValidateName(input.NewName); err != nil {
		return err
	}
	dst := document.RenamedPath(src, input.NewName)
	if dst == src {
		return nil
	}
	return rewriteTree(ctx, deps, src, dst, "renamed", false)
}

// rewriteTree copies src (a file, or a folder with all members) to dst, then
// deletes the originals unless keepSource. Copy-before-delete keeps the data
// reachable if the operation dies halfway.
func rewriteTree(ctx context.Context, deps DocumentDeps, src, dst, event string, keepSource bool) error {
	exists, err := deps.Blob.Exists(ctx, src)
	if err != nil {
		return fmt.Errorf("check %q: %w", src, err)
	}

	if exists {
		if err := deps.Blob.Copy(ctx, src, dst); err != nil {
			return fmt.Errorf("copy %q to %q: %w", src, dst, err)
		}
		if !keepSource {
			if err := deps.Blob.Delete(ctx, src); err != nil {
				return fmt.Errorf("delete %q: %w", src, err)
			}
		}
		slog.Info("document_event", "event", "file_"+event, "from", src, "to", dst)
		return nil
	}

	srcPrefix := document.FolderPrefix(src)
	members, err := deps.Blob.ListPrefix(ctx, srcPrefix)
	if err != nil {
		return fmt.Errorf("list folder %q: %w", src, err)
	}
	if len(members) == 0 {
		return &NotFoundError{Pathname: src}
	}

	dstPrefix := document.FolderPrefix(dst)
	for _, obj := range members {
		suffix := strings.TrimPrefix(obj.Pathname, srcPrefix)
		if err := deps.Blob.Copy(ctx, obj.Pathname, dstPrefix+suffix); err != nil {
			return fmt.Errorf("copy %q: %w", obj.Pathname, err)
		}
	}
	if !keepSource {
		for _, obj := range members {
			if err := deps.Blob.Delete(ctx, obj.Pathname); err != nil {
				return fmt.Errorf("delete %q: %w", obj.Pathname, err)
			}
		}
	}

	slog.Info("document_event", "event", "folder_"+event, "from", src, "to", dst, "members", len(members))
	return nil
}

// NotFoundError reports that neither a file nor a folder exists at a pathname.
type NotFoundError struct {
	Pathname string
}

func (e *NotFoundError) Error() string {
	return "document not found: " + e.Pathname
}
