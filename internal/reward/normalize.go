package reward

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/GooferByte/rewardcatalog/internal/models"
)

var (
	ErrInvalidBaseURL   = errors.New("invalid_base_url")
	ErrInvalidImagePath = errors.New("invalid_image_path")
)

const colonInFirstSegment = "first path segment in URL cannot contain colon"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalizer converts catalog resources into rewards, resolving image paths
// against a fixed base URL.
type Normalizer struct {
	base *url.URL
}

// NewNormalizer validates baseURL once. The base must be absolute.
func NewNormalizer(baseURL string) (*Normalizer, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidBaseURL, baseURL)
	}
	return &Normalizer{base: base}, nil
}

// BaseURL returns the base image paths are resolved against.
func (n *Normalizer) BaseURL() string {
	return n.base.String()
}

// RewardFromResource is a one-shot form of Normalizer.FromResource.
func RewardFromResource(r models.RewardResource, baseURL string) (models.Reward, error) {
	n, err := NewNormalizer(baseURL)
	if err != nil {
		return models.Reward{}, err
	}
	return n.FromResource(r)
}

// FromResource builds the Reward for r. It does not modify r and shares no
// slices with it.
func (n *Normalizer) FromResource(r models.RewardResource) (models.Reward, error) {
	out := models.Reward{
		ID:            r.ID,
		Name:          r.Name,
		DeveloperName: r.DeveloperName,
		PublisherName: r.PublisherName,
		Headline:      r.Headline,
		Description:   r.Description,
		Price:         r.Price,
		Platform:      r.Platform,
		Quantity:      copyInt(r.Quantity),
	}

	var ok bool
	if out.ReleaseDate, ok = parseDate(r.ReleaseDate); !ok {
		out.InvalidDates = append(out.InvalidDates, "releaseDate")
	}
	if out.AddedDate, ok = parseDate(r.AddedDate); !ok {
		out.InvalidDates = append(out.InvalidDates, "addedDate")
	}

	var err error
	if out.CoverImage, err = n.resolveOptional(r.CoverImage); err != nil {
		return models.Reward{}, err
	}
	if out.HeroImage, err = n.resolveOptional(r.HeroImage); err != nil {
		return models.Reward{}, err
	}
	if out.Image, err = n.resolveOptional(r.Image); err != nil {
		return models.Reward{}, err
	}
	if r.Images != nil {
		out.Images = make([]string, len(r.Images))
		for i, img := range r.Images {
			// empty entries mark a missing image and keep their slot
			if img == "" {
				continue
			}
			if out.Images[i], err = n.resolve(img); err != nil {
				return models.Reward{}, err
			}
		}
	}

	if r.Tags != nil {
		out.Tags = make([]string, len(r.Tags))
		for i, tag := range r.Tags {
			out.Tags[i] = strings.ToLower(tag)
		}
	}
	return out, nil
}

func (n *Normalizer) resolveOptional(path *string) (*string, error) {
	if path == nil || *path == "" {
		return nil, nil
	}
	resolved, err := n.resolve(*path)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

func (n *Normalizer) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil && strings.Contains(err.Error(), colonInFirstSegment) {
		// "1:2.png" has no valid scheme, so it is a relative path
		ref, err = url.Parse("./" + path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidImagePath, path, err)
	}
	return n.base.ResolveReference(ref).String(), nil
}

// parseDate returns nil for an empty value. The second result is false only
// when a non-empty value matched no known layout.
func parseDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
