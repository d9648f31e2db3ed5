// Command artex reads an HTML file from disk, extracts an Article
// from it, and writes the result as indented JSON to stdout.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/corvidlabs/artex/pkg/article"
	"github.com/corvidlabs/artex/pkg/config"
)

func main() {
	var (
		baseURL      = flag.String("base-url", "", "base URL to resolve relative links against")
		requireTitle = flag.Bool("require-title", false, "fail if no title is extracted")
		requireText  = flag.Bool("require-text", false, "fail if no body text is extracted")
		requireDate  = flag.Bool("require-date", false, "fail if no publish date is extracted")
	)
	flag.Usage = func() {
		log.Printf("usage: artex [flags] <html-file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	htmlBytes, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading %s: %v", flag.Arg(0), err)
	}

	cfg := config.NewDefault()
	cfg.Completeness = config.CompletenessPolicy{
		RequireTitle: *requireTitle,
		RequireText:  *requireText,
		RequireDate:  *requireDate,
	}

	result, err := article.Extract(string(htmlBytes), *baseURL, cfg)
	if err != nil {
		var extractErr *article.Error
		if asArtexError(err, &extractErr) && extractErr.Kind == article.IncompleteArticle {
			log.Printf("warning: %v", extractErr)
			result = extractErr.Partial
		} else {
			log.Fatalf("extraction failed: %v", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encoding result: %v", err)
	}
}

func asArtexError(err error, target **article.Error) bool {
	e, ok := err.(*article.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
