package service

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"salesdesk/model"
	"salesdesk/store"
)

type KnowledgeService struct {
	Store store.Store
}

// ImportFromURL fetches a page, converts it to markdown and files it in
// the knowledge base.
func (s *KnowledgeService) ImportFromURL(rawURL, tag string) (*model.KnowledgeFile, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	res, err := http.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", res.StatusCode, rawURL)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	content, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to convert page to markdown: %w", err)
	}

	if tag == "" {
		tag = "general"
	}
	file := &model.KnowledgeFile{
		Name:    parsed.Host + parsed.Path,
		Type:    "url",
		Size:    fmt.Sprintf("%d", len(content)),
		Tag:     tag,
		Content: content,
	}
	if err := s.Store.CreateKnowledgeFile(file); err != nil {
		return nil, err
	}
	return file, nil
}
