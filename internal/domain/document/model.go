package document

import (
	"errors"
	"path"
	"strings"
	"time"
)

// PlaceholderName is the zero-byte marker object stored inside an otherwise
// empty folder. The blob namespace is flat; a folder exists only as a shared
// pathname prefix, so an empty folder needs a placeholder to exist at all.
const PlaceholderName = ".gitkeep"

// Domain errors
var (
	ErrEmptyPathname   = errors.New("pathname is required")
	ErrEmptyFolderName = errors.New("folder name is required")
	ErrEmptyFileName   = errors.New("file name is required")
	ErrInvalidName     = errors.New("name cannot contain '/'")
	ErrEscapesRoot     = errors.New("path cannot escape the document root")
)

// Object is a single blob in the document namespace.
type Object struct {
	Pathname   string
	URL        string
	Size       int64
	UploadedAt time.Time
}

// IsPlaceholder returns true if the object is a folder placeholder.
// INVARIANT: Object fields are not mutated
func (o *Object) IsPlaceholder() bool {
	return path.Base(o.Pathname) == PlaceholderName
}

// ValidateName checks a single path segment (folder name, file name).
// PRE: name comes from user input
// POST: Returns nil only for a non-empty segment without separators
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFolderName
	}
	if strings.Contains(name, "/") {
		return ErrInvalidName
	}
	if name == "." || name == ".." {
		return ErrEscapesRoot
	}
	return nil
}

// CleanPath normalizes a user-supplied pathname: trims surrounding slashes
// and rejects traversal segments.
// POST: Returns the cleaned path or an error
func CleanPath(p string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(p), "/")
	if trimmed == "" {
		return "", ErrEmptyPathname
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrEscapesRoot
	}
	return cleaned, nil
}

// JoinPath joins an optional parent path with a name. Empty parent means the
// document root.
func JoinPath(parent, name string) string {
	parent = strings.Trim(parent, "/")
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// FolderPrefix returns the member prefix for a folder pathname. A blob is a
// member of the folder iff its pathname has this prefix.
func FolderPrefix(pathname string) string {
	return strings.TrimSuffix(pathname, "/") + "/"
}

// PlaceholderFor returns the placeholder pathname for a folder.
func PlaceholderFor(folderPath string) string {
	return FolderPrefix(folderPath) + PlaceholderName
}

// FolderFromPlaceholder strips the placeholder suffix from a pathname,
// yielding the folder path it marks.
func FolderFromPlaceholder(pathname string) string {
	return strings.TrimSuffix(pathname, "/"+PlaceholderName)
}

// RenamedPath returns the pathname with its last segment replaced by newName.
// PRE: newName has been validated with ValidateName
func RenamedPath(pathname, newName string) string {
	dir := path.Dir(pathname)
	if dir == "." {
		return newName
	}
	return dir + "/" + newName
}

// MovedPath returns the pathname relocated under newParent, keeping the last
// segment.
func MovedPath(pathname, newParent string) string {
	return JoinPath(newParent, path.Base(pathname))
}
