/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Seednode/wordshadow/games/shadow"
	"github.com/julienschmidt/httprouter"
)

func homePage(cfg *Config, room string) string {
	var body strings.Builder

	body.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	body.WriteString(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	body.WriteString(`<style>body{font-family:sans-serif;max-width:40em;margin:2em auto;padding:0 1em;}code{background:#eee;}</style>`)
	body.WriteString(`<title>Shadow</title></head><body>`)
	body.WriteString(`<h1>Shadow</h1>`)

	if code := shadow.NormalizeCode(room); code != "" {
		body.WriteString(fmt.Sprintf(`<p>You have been invited to room <strong>%s</strong>.</p>`, html.EscapeString(code)))
	}

	body.WriteString(`<p>Everyone gets the same secret word except the shadow, who gets a close cousin of it. `)
	body.WriteString(`Describe your word without giving it away, then vote for whoever you think is the odd one out.</p>`)
	body.WriteString(fmt.Sprintf(`<p>Rooms hold %d to %d players.</p>`, cfg.minPlayers, cfg.maxPlayers))
	body.WriteString(fmt.Sprintf(`<p>Clients connect to <code>%s/shadow/ws</code>.</p>`, html.EscapeString(cfg.prefix)))
	body.WriteString(`</body></html>`)

	return body.String()
}

func serveHomePage(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		page := homePage(cfg, r.URL.Query().Get("room"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(page)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(page))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := `User-agent: *
Disallow: ` + cfg.prefix + `/shadow/

User-agent: GPTBot
Disallow: /

User-agent: CCBot
Disallow: /`

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(data))
		if err != nil {
			errs <- err

			return
		}
	}
}

func registerHome(cfg *Config, path string, mux *httprouter.Router, errs chan<- error) {
	mux.GET(path, serveHomePage(cfg, errs))
}
