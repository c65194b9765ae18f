package reward

import (
	"testing"
	"time"

	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testBase = "https://cdn.example.com/"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleResource() models.RewardResource {
	return models.RewardResource{
		ID:            "r-1",
		Name:          "Space Trader",
		ReleaseDate:   "2020-05-01T00:00:00Z",
		AddedDate:     "2021-01-15",
		DeveloperName: "Dev Co",
		PublisherName: "Pub Co",
		Headline:      "Trade among the stars",
		Description:   "A long description",
		Price:         decimal.RequireFromString("24.99"),
		CoverImage:    strPtr("img/a.png"),
		HeroImage:     strPtr("https://other.com/x.png"),
		Images:        []string{"img/1.png", "/abs/2.png", "", "https://other.com/3.png"},
		Platform:      "steam",
		Tags:          []string{"Foo", "BAR"},
		Quantity:      intPtr(3),
	}
}

func TestNewNormalizerRejectsBadBase(t *testing.T) {
	tests := []string{"", "img/relative", "://broken", "/just/a/path"}
	for _, base := range tests {
		_, err := NewNormalizer(base)
		require.ErrorIs(t, err, ErrInvalidBaseURL, "base=%q", base)
	}
}

func TestFromResourceImages(t *testing.T) {
	n, err := NewNormalizer(testBase)
	require.NoError(t, err)

	got, err := n.FromResource(sampleResource())
	require.NoError(t, err)

	require.Equal(t, "https://cdn.example.com/img/a.png", *got.CoverImage)
	require.Equal(t, "https://other.com/x.png", *got.HeroImage)
	require.Nil(t, got.Image)
	require.Equal(t, []string{
		"https://cdn.example.com/img/1.png",
		"https://cdn.example.com/abs/2.png",
		"",
		"https://other.com/3.png",
	}, got.Images)
}

func TestFromResourceFields(t *testing.T) {
	src := sampleResource()
	got, err := RewardFromResource(src, testBase)
	require.NoError(t, err)

	require.Equal(t, []string{"foo", "bar"}, got.Tags)
	require.Equal(t, []string{"Foo", "BAR"}, src.Tags)
	require.Equal(t, time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), *got.ReleaseDate)
	require.Equal(t, time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC), *got.AddedDate)
	require.Empty(t, got.InvalidDates)
	require.Equal(t, src.ID, got.ID)
	require.Equal(t, src.Name, got.Name)
	require.Equal(t, src.Headline, got.Headline)
	require.True(t, src.Price.Equal(got.Price))
	require.Equal(t, 3, *got.Quantity)
	require.NotSame(t, src.Quantity, got.Quantity)
}

func TestFromResourceAbsentFields(t *testing.T) {
	got, err := RewardFromResource(models.RewardResource{ID: "bare"}, testBase)
	require.NoError(t, err)

	require.Nil(t, got.ReleaseDate)
	require.Nil(t, got.AddedDate)
	require.Nil(t, got.CoverImage)
	require.Nil(t, got.HeroImage)
	require.Nil(t, got.Image)
	require.Nil(t, got.Images)
	require.Nil(t, got.Tags)
	require.Nil(t, got.Quantity)
}

func TestFromResourceInvalidDate(t *testing.T) {
	src := models.RewardResource{ID: "r", ReleaseDate: "not a date", AddedDate: "2021-02-03T04:05:06"}
	got, err := RewardFromResource(src, testBase)
	require.NoError(t, err)

	require.Nil(t, got.ReleaseDate)
	require.Equal(t, []string{"releaseDate"}, got.InvalidDates)
	require.Equal(t, time.Date(2021, 2, 3, 4, 5, 6, 0, time.UTC), *got.AddedDate)
}

func TestFromResourceInvalidImagePath(t *testing.T) {
	src := models.RewardResource{ID: "r", Image: strPtr("%zz")}
	_, err := RewardFromResource(src, testBase)
	require.ErrorIs(t, err, ErrInvalidImagePath)
}

func TestFromResourceColonInRelativePath(t *testing.T) {
	src := models.RewardResource{ID: "r", Image: strPtr("1:2.png"), Images: []string{"art/1:2.png", "9:x/y.png"}}
	got, err := RewardFromResource(src, "https://cdn.example.com/assets/")
	require.NoError(t, err)

	require.Equal(t, "https://cdn.example.com/assets/1:2.png", *got.Image)
	require.Equal(t, []string{
		"https://cdn.example.com/assets/art/1:2.png",
		"https://cdn.example.com/assets/9:x/y.png",
	}, got.Images)
}

func TestFromResourceIsPure(t *testing.T) {
	n, err := NewNormalizer(testBase)
	require.NoError(t, err)

	src := sampleResource()
	first, err := n.FromResource(src)
	require.NoError(t, err)
	second, err := n.FromResource(src)
	require.NoError(t, err)
	require.Equal(t, first, second)

	first.Tags[0] = "changed"
	require.Equal(t, "foo", second.Tags[0])
}
