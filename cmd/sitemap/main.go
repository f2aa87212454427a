// Command sitemap generates a sitemap.xml for the public site from the
// dictionary contents: the homepage plus one page per English word that
// has at least one translation.
//
// Flags:
//
//	--base-url  site root used for all URLs (default https://alarino.com)
//	--out       output file (default: stdout)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alarino/alarino-backend/internal/adapter/postgres"
	"github.com/alarino/alarino-backend/internal/adapter/postgres/word"
	"github.com/alarino/alarino-backend/internal/app"
	"github.com/alarino/alarino-backend/internal/config"
	"github.com/alarino/alarino-backend/internal/domain"
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

func main() {
	baseURLFlag := flag.String("base-url", "https://alarino.com", "site root used for all URLs")
	outFlag := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	words := word.New(pool)

	texts, err := words.ListWithTranslations(ctx, domain.English)
	if err != nil {
		logger.Error("list words", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			logger.Error("create output file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := writeSitemap(out, *baseURLFlag, texts, time.Now().UTC()); err != nil {
		logger.Error("write sitemap", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("sitemap generated", slog.Int("words", len(texts)))
}

// writeSitemap renders the urlset document: the homepage first, then one
// translation page per word.
func writeSitemap(w io.Writer, baseURL string, texts []string, now time.Time) error {
	lastMod := now.Format("2006-01-02")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []urlEntry{{
			Loc:        baseURL + "/",
			LastMod:    lastMod,
			ChangeFreq: "daily",
			Priority:   "1.0",
		}},
	}

	for _, text := range texts {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/translate/%s", baseURL, url.PathEscape(text)),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
