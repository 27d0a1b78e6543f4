package aiControllers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuildPromptIncludesSelectedOptions(t *testing.T) {
	prompt := buildPrompt(DesignInput{
		Type:          "Ring",
		Material:      "Gold",
		Karat:         "18K",
		Color:         "Yellow",
		Shape:         "Round",
		GemstoneType:  "Ruby",
		GemstoneColor: "Deep Red",
	})

	for _, want := range []string{
		"ring jewelry piece",
		"- Material: Gold (18K)",
		"- Primary Color: Yellow",
		"- Shape/Style: Round",
		"featuring a Deep Red Ruby",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptWithoutGemstone(t *testing.T) {
	prompt := buildPrompt(DesignInput{Type: "Necklace", Material: "Silver", GemstoneType: "none"})
	if !strings.Contains(prompt, "- No gemstones") {
		t.Errorf("expected no-gemstone line, got:\n%s", prompt)
	}
	if strings.Contains(prompt, "featuring a") {
		t.Errorf("gemstone line should be absent:\n%s", prompt)
	}

	// Gemstone without a color falls back to a neutral description.
	prompt = buildPrompt(DesignInput{Type: "Bracelet", Material: "Gold", GemstoneType: "Sapphire"})
	if !strings.Contains(prompt, "featuring a natural colored Sapphire") {
		t.Errorf("expected default gemstone color, got:\n%s", prompt)
	}
}

func TestGenerateImageDecodesFirstImagePart(t *testing.T) {
	imageBytes := []byte("fake-png-bytes")
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")

		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("unexpected request shape: %+v", req)
		}

		resp := generateContentResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{{
				Content: content{Parts: []part{
					{Text: "here is your design"},
					{InlineData: &inlineData{
						MimeType: "image/png",
						Data:     base64.StdEncoding.EncodeToString(imageBytes),
					}},
				}},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	t.Setenv("IMAGE_API_URL", server.URL)
	t.Setenv("GEMINI_API_KEY", "test-key")

	got, err := generateImage("a gold ring")
	if err != nil {
		t.Fatalf("generateImage failed: %v", err)
	}
	if string(got) != string(imageBytes) {
		t.Errorf("expected decoded image bytes, got %q", got)
	}
	if gotKey != "test-key" {
		t.Errorf("expected api key header, got %q", gotKey)
	}
}

func TestGenerateImageErrors(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := generateImage("anything"); err == nil {
		t.Error("expected error when api key is missing")
	}

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429,"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer failing.Close()

	t.Setenv("IMAGE_API_URL", failing.URL)
	t.Setenv("GEMINI_API_KEY", "test-key")
	if _, err := generateImage("anything"); err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status error, got %v", err)
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateContentResponse{})
	}))
	defer empty.Close()

	t.Setenv("IMAGE_API_URL", empty.URL)
	if _, err := generateImage("anything"); err == nil || !strings.Contains(err.Error(), "no image") {
		t.Errorf("expected no-image error, got %v", err)
	}
}
