package media

import (
	"net/url"
	"path"
	"strings"
)

// Reference is where the browser can load an uploaded image from.
type Reference struct {
	Filename string `json:"filename"`
	URL      string `json:"imageUrl"`
}

// Resolve maps a document uri ("folder/file.jpg" or "gs://bucket/folder/file.jpg")
// to its download URL in the storage bucket.
func Resolve(baseURL, bucket, uri string) Reference {
	object := strings.TrimPrefix(uri, "gs://")
	if object != uri {
		// drop the bucket segment of gs:// uris
		_, object, _ = strings.Cut(object, "/")
	}
	object = strings.TrimPrefix(object, "/")
	if object == "" {
		return Reference{}
	}

	u := strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(bucket) + "/o/" + url.PathEscape(object) + "?alt=media"
	return Reference{
		Filename: path.Base(object),
		URL:      u,
	}
}
