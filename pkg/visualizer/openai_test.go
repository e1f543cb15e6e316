package visualizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Monaco", "Sand Dune", "")
	assert.Contains(t, p, "Monaco")
	assert.Contains(t, p, "Sand Dune")

	p = BuildPrompt("Monaco", "", "Favor a herringbone pattern.")
	assert.Contains(t, p, "Favor a herringbone pattern.")
}

func TestExtractImageDataURL(t *testing.T) {
	content := "Here is your edited image:\n\ndata:image/png;base64,iVBORw0KGgoAAAANSUhEUg==\n\nEnjoy!"
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==", ExtractImageDataURL(content))

	assert.Empty(t, ExtractImageDataURL("no image here"))
	assert.Empty(t, ExtractImageDataURL(""))
}

func TestGenerate_RejectsNonDataURLPhoto(t *testing.T) {
	client := NewOpenAIClient("test-key", "gpt-4o", time.Second)

	_, err := client.Generate(context.Background(), Request{
		PhotoDataURL: "https://example.com/photo.jpg",
		TextureURL:   "data:image/png;base64,AAAA",
	})
	assert.True(t, domain.IsValidation(err))
}

func TestTextureAsDataURL(t *testing.T) {
	// 1x1 PNG header bytes are enough for content-type detection
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "gpt-4o", time.Second)

	dataURL, err := client.textureAsDataURL(context.Background(), server.URL+"/texture.png")
	require.NoError(t, err)
	assert.Contains(t, dataURL, "data:image/png;base64,")
}

func TestTextureAsDataURL_PassthroughAndErrors(t *testing.T) {
	client := NewOpenAIClient("test-key", "gpt-4o", time.Second)
	ctx := context.Background()

	// Data URLs pass through untouched
	dataURL, err := client.textureAsDataURL(ctx, "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", dataURL)

	_, err = client.textureAsDataURL(ctx, "")
	assert.Error(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err = client.textureAsDataURL(ctx, server.URL+"/missing.png")
	assert.Error(t, err)
}
