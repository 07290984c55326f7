package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/urlmd"
	"github.com/fwojciec/urlmd/bluemonday"
	"github.com/fwojciec/urlmd/convert"
	"github.com/fwojciec/urlmd/goquery"
	"github.com/fwojciec/urlmd/htmltomarkdown"
	urlmdhttp "github.com/fwojciec/urlmd/http"
	"github.com/fwojciec/urlmd/oauth2"
	"github.com/fwojciec/urlmd/readability"
	"github.com/fwojciec/urlmd/rod"
	urlmdslog "github.com/fwojciec/urlmd/slog"
	"github.com/fwojciec/urlmd/trafilatura"
)

// NewExtractor returns the generic content extractor registered under name.
func NewExtractor(name string) (urlmd.Extractor, error) {
	switch name {
	case "", "selector":
		return goquery.NewContentExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, urlmd.Errorf(urlmd.EINVALID, "unknown extractor %q", name)
	}
}

// newSource wires the full conversion stack. The returned func releases
// the fetcher.
func (m *Main) newSource(cli *CLI, logger *slog.Logger) (urlmd.Source, func() error, error) {
	client := urlmdhttp.NewClient(cli.Timeout)

	var fetcher urlmd.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(urlmdhttp.BrowserUserAgent),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = urlmdhttp.NewFetcher(urlmdhttp.WithClient(client))
	}
	fetcher = urlmdslog.NewLoggingFetcher(fetcher, logger)

	extractor, err := NewExtractor(cli.Extractor)
	if err != nil {
		_ = fetcher.Close()
		return nil, nil, err
	}

	getenv := m.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	tokens := urlmdslog.NewLoggingTokenSource(
		oauth2.NewTokenSource(
			oauth2.WithHTTPClient(client),
			oauth2.WithUserAgent(urlmdhttp.DefaultUserAgent),
		),
		logger,
	)

	generic := &convert.GenericSource{
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
		Archive:   urlmdslog.NewLoggingArchive(urlmdhttp.NewArchive(client), logger),
		Logger:    logger,
	}
	if cli.Sanitize {
		generic.Sanitizer = bluemonday.NewSanitizer()
	}

	dispatcher := &convert.Dispatcher{
		Forum: &convert.ForumSource{
			Threads:             urlmdhttp.NewThreadService(client),
			Tokens:              tokens,
			DefaultClientID:     getenv(EnvClientID),
			DefaultClientSecret: getenv(EnvClientSecret),
			Logger:              logger,
		},
		Status: &convert.StatusSource{
			Statuses: urlmdhttp.NewStatusService(client),
			Parser:   goquery.NewStatusParser(),
		},
		Generic: generic,
	}

	return urlmdslog.NewLoggingSource(dispatcher, logger), fetcher.Close, nil
}
