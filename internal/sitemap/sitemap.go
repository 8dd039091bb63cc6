// Package sitemap 生成站点地图.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/fractionax/marketplace/internal/logger"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry 一个页面
type Entry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// URLSet sitemap 根节点
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// ChangeFrequency 按路由决定更新频率
func ChangeFrequency(route string) string {
	switch {
	case route == "/":
		return "daily"
	case strings.Contains(route, "/blog/"):
		return "weekly"
	case strings.Contains(route, "/docs/"):
		return "monthly"
	default:
		return "weekly"
	}
}

// Priority 按路由决定优先级
func Priority(route string) float64 {
	switch {
	case route == "/":
		return 1.0
	case strings.Contains(route, "/blog/"):
		return 0.8
	case strings.Contains(route, "/docs/"):
		return 0.7
	default:
		return 0.6
	}
}

// ListingRoute 投资详情页路由
func ListingRoute(id int64) string {
	return fmt.Sprintf("/listing/%d", id)
}

// Build 生成条目; baseURL 为空时记录错误并返回空列表
func Build(baseURL string, routes []string, now time.Time) []Entry {
	entries := []Entry{}
	if baseURL == "" {
		logger.Error("Website URL not configured, sitemap is empty")
		return entries
	}

	base := strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Format(time.RFC3339)
	for _, route := range routes {
		if route == "" {
			route = "/"
		}
		entries = append(entries, Entry{
			Loc:        base + route,
			LastMod:    lastMod,
			ChangeFreq: ChangeFrequency(route),
			Priority:   Priority(route),
		})
	}
	return entries
}

// Marshal 序列化为 XML 文档
func Marshal(entries []Entry) ([]byte, error) {
	body, err := xml.MarshalIndent(URLSet{Xmlns: xmlns, URLs: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
