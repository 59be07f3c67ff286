package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"agritech/entities"
	"agritech/pkg/refdata"
	"agritech/pkg/refdata/repository"
)

const maxPageBytes = 1 << 21 // 2 MiB per reference page

type RefdataCtrl struct {
	repo  repository.BarangayRepository
	allow map[string]bool
}

// New builds the controller with an allow-list of fetchable hosts; an
// empty list disables URL ingest entirely.
func New(repo repository.BarangayRepository, allowedDomains []string) *RefdataCtrl {
	allow := map[string]bool{}
	for _, h := range allowedDomains {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			allow[h] = true
		}
	}
	return &RefdataCtrl{repo: repo, allow: allow}
}

func (h *RefdataCtrl) List(c echo.Context) error {
	bs, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bs)
}

func (h *RefdataCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	bs, err := fetchBarangays(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	added, err := h.repo.Upsert(bs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"parsed": len(bs), "added": added})
}

func fetchBarangays(pageURL string) ([]entities.Barangay, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", pageURL, resp.Status)
	}
	limited := io.LimitReader(resp.Body, maxPageBytes)
	return refdata.ParseBarangays(limited)
}
