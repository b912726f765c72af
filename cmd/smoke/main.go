// Command smoke drives a running server through the ingest, page and list
// routes and exits non-zero on the first failure.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const samplePayload = `{
	"uri": "smoke/dog.jpg",
	"labelAnnotations": [{"description": "dog", "score": 0.9}],
	"webDetection": {
		"bestGuessLabels": [{"label": "beagle"}],
		"webEntities": [{"description": "", "score": 5}, {"description": "Dog", "score": 2}],
		"visuallySimilarImages": [],
		"partialMatchingImages": [],
		"pagesWithMatchingImages": [{
			"url": "https://dogs.example",
			"pageTitle": "<b>Beagle</b> facts",
			"partialMatchingImages": [],
			"fullMatchingImages": [{"url": "https://dogs.example/full.jpg"}]
		}]
	}
}`

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	user := flag.String("user", fmt.Sprintf("smoke-%d", time.Now().Unix()), "user id sent in X-Forwarded-User")
	flag.Parse()

	c := &client{baseURL: *baseURL, user: *user, http: &http.Client{Timeout: 10 * time.Second}}

	fmt.Println("1. Ingesting document...")
	var saved struct {
		ID string `json:"id"`
	}
	c.must(http.MethodPost, "/api/images", samplePayload, http.StatusCreated, &saved)
	fmt.Printf("   id=%s\n", saved.ID)

	fmt.Println("2. Loading image page...")
	var page struct {
		Filename string `json:"filename"`
		View     struct {
			BestGuess  *string `json:"bestGuess"`
			EntityRows []struct {
				Description string  `json:"description"`
				Percent     float64 `json:"percent"`
			} `json:"entityRows"`
		} `json:"view"`
	}
	c.must(http.MethodGet, "/api/images/"+saved.ID, "", http.StatusOK, &page)
	if len(page.View.EntityRows) != 1 || page.View.EntityRows[0].Percent != 40 {
		fail("unexpected entity rows: %+v", page.View.EntityRows)
	}
	fmt.Printf("   %s: best guess %q\n", page.Filename, deref(page.View.BestGuess))

	fmt.Println("3. Listing images...")
	var list struct {
		Images []struct {
			ID string `json:"id"`
		} `json:"images"`
	}
	c.must(http.MethodGet, "/api/images", "", http.StatusOK, &list)
	if len(list.Images) == 0 {
		fail("image list is empty")
	}

	fmt.Println("4. Checking sign-in guard...")
	c.user = ""
	c.must(http.MethodGet, "/api/images", "", http.StatusUnauthorized, nil)

	fmt.Println("SUCCESS")
}

type client struct {
	baseURL string
	user    string
	http    *http.Client
}

func (c *client) must(method, path, body string, wantStatus int, out interface{}) {
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewBufferString(body))
	if err != nil {
		fail("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.user != "" {
		req.Header.Set("X-Forwarded-User", c.user)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		fail("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		fail("%s %s: status %d, want %d: %s", method, path, resp.StatusCode, wantStatus, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			fail("%s %s: decode: %v", method, path, err)
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fail(format string, args ...interface{}) {
	fmt.Printf("FAILED: "+format+"\n", args...)
	os.Exit(1)
}
