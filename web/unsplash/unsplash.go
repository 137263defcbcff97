// Package unsplash is a thin client for the Unsplash photo search API,
// used by the back-office to pick cover images.
package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/evolvo-uz/evolvo/util/common"
)

const searchEndpoint = "https://api.unsplash.com/search/photos"

// ErrNotConfigured is returned when no access key is set.
var ErrNotConfigured = errors.New("unsplash access key is not configured")

// Image is a simplified search result.
type Image struct {
	Id          string `json:"id"`
	Description string `json:"description"`
	ThumbURL    string `json:"thumbUrl"`
	RegularURL  string `json:"regularUrl"`
	Author      string `json:"author"`
}

type searchResponse struct {
	Results []struct {
		Id          string `json:"id"`
		Description string `json:"description"`
		Urls        struct {
			Thumb   string `json:"thumb"`
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// Client calls the Unsplash API with a fixed access key.
type Client struct {
	accessKey string
	http      *http.Client
}

func New(accessKey string) *Client {
	return &Client{
		accessKey: accessKey,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns up to perPage images matching the query.
func (c *Client) Search(ctx context.Context, query string, perPage int) ([]Image, error) {
	if c.accessKey == "" {
		return nil, ErrNotConfigured
	}
	if perPage <= 0 || perPage > 30 {
		perPage = 12
	}

	u := fmt.Sprintf("%s?query=%s&per_page=%d", searchEndpoint, url.QueryEscape(query), perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewErrorf("unsplash search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		images = append(images, Image{
			Id:          r.Id,
			Description: r.Description,
			ThumbURL:    r.Urls.Thumb,
			RegularURL:  r.Urls.Regular,
			Author:      r.User.Name,
		})
	}
	return images, nil
}
