package gateway

import (
	"fmt"
	"net/url"
	"strings"

	"marketsync/internal/errs"

	"github.com/ipfs/go-cid"
)

const ipfsScheme = "ipfs://"

// Locator is a parsed asset URI. Direct locators are plain http(s)
// addresses fetched as they are.
type Locator struct {
	Raw    string
	CID    cid.Cid
	Path   string
	Direct bool

	cidText string
}

// ParseURI accepts ipfs://<cid>[/<path>] and http(s) URLs.
func ParseURI(uri string) (Locator, error) {
	raw := strings.TrimSpace(uri)
	if raw == "" {
		return Locator{}, errs.ErrNoURIProvided
	}

	if len(raw) >= len(ipfsScheme) && strings.EqualFold(raw[:len(ipfsScheme)], ipfsScheme) {
		rest := strings.TrimPrefix(raw[len(ipfsScheme):], "ipfs/")
		cidText, path, _ := strings.Cut(rest, "/")
		if cidText == "" {
			return Locator{}, errs.ErrNoURIProvided
		}
		c, err := cid.Decode(cidText)
		if err != nil {
			return Locator{}, errs.Validation(fmt.Errorf("uri %q: invalid cid: %w", raw, err))
		}
		return Locator{Raw: raw, CID: c, Path: strings.Trim(path, "/"), cidText: cidText}, nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Locator{}, errs.Validation(fmt.Errorf("uri %q: expected ipfs:// or http(s)://", raw))
	}
	return Locator{Raw: raw, Direct: true}, nil
}

// URL renders the locator against a gateway base URL.
func (l Locator) URL(gateway string) string {
	if l.Direct {
		return l.Raw
	}
	out := strings.TrimRight(gateway, "/") + "/ipfs/" + l.cidText
	if l.Path != "" {
		out += "/" + l.Path
	}
	return out
}

// Key identifies the content regardless of how its URI was spelled.
func (l Locator) Key() string {
	if l.Direct {
		return l.Raw
	}
	if l.Path == "" {
		return l.CID.String()
	}
	return l.CID.String() + "/" + l.Path
}

// LastSegment is the final path element, useful as a filename hint.
func (l Locator) LastSegment() string {
	if l.Direct {
		u, err := url.Parse(l.Raw)
		if err != nil {
			return ""
		}
		p := strings.Trim(u.Path, "/")
		if i := strings.LastIndex(p, "/"); i >= 0 {
			p = p[i+1:]
		}
		seg, err := url.PathUnescape(p)
		if err != nil {
			return p
		}
		return seg
	}
	if l.Path == "" {
		return ""
	}
	if i := strings.LastIndex(l.Path, "/"); i >= 0 {
		return l.Path[i+1:]
	}
	return l.Path
}
