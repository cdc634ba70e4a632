package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/store"
)

func TestImportFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, `<html><body><h1>دليل المبيعات</h1><p>الخطوة الأولى هي الإنصات.</p></body></html>`)
	}))
	defer srv.Close()

	st := store.NewMemStore()
	svc := &KnowledgeService{Store: st}

	file, err := svc.ImportFromURL(srv.URL+"/guides/sales", "sales")
	require.NoError(t, err)
	assert.Equal(t, "url", file.Type)
	assert.Equal(t, "sales", file.Tag)
	assert.Contains(t, file.Name, "/guides/sales")
	assert.Contains(t, file.Content, "دليل المبيعات")
	assert.Contains(t, file.Content, "الإنصات")

	files, err := st.ListKnowledgeFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestImportFromURLRejectsBadInput(t *testing.T) {
	svc := &KnowledgeService{Store: store.NewMemStore()}

	_, err := svc.ImportFromURL("not a url", "")
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err = svc.ImportFromURL(srv.URL, "")
	assert.Error(t, err)

	files, listErr := svc.Store.ListKnowledgeFiles()
	require.NoError(t, listErr)
	assert.Empty(t, files)
}

func TestBuildDigestMarkdown(t *testing.T) {
	stats := &DashboardStats{TotalDeals: 5, ActiveDeals: 4, NewLeads: 1, ConversionRate: "40%"}
	md := buildDigestMarkdown(stats, nil)
	assert.Contains(t, md, "Total deals: 5")
	assert.Contains(t, md, "Conversion rate: 40%")
	assert.NotContains(t, md, "Newest deals")
}
