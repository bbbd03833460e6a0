package pinning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	tokenIssuer "marketsync/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultAPIURL = "https://api.pinata.cloud"

var (
	ErrMissingToken = errors.New("pinning service token is not configured")
	ErrNoCID        = errors.New("pinning service did not return a cid")
)

// PinResult describes a freshly pinned file.
type PinResult struct {
	CID          string `json:"cid"`
	URI          string `json:"uri"`
	OriginalName string `json:"originalName"`
}

type pinListResponse struct {
	Count int `json:"count"`
	Rows  []struct {
		IPFSPinHash    string       `json:"ipfs_pin_hash"`
		Metadata       *pinMetadata `json:"metadata"`
		PinataMetadata *pinMetadata `json:"pinataMetadata"`
	} `json:"rows"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinFileResponse struct {
	IpfsHash string `json:"IpfsHash"`
	CID      string `json:"cid"`
	Hash     string `json:"hash"`
}

// Client talks to the pinning service that holds the original upload
// metadata, mostly the name a file was uploaded under.
type Client struct {
	logs   *zap.SugaredLogger
	http   *http.Client
	apiURL string
	token  string
	group  singleflight.Group
}

func NewClient(logger *zap.SugaredLogger, httpClient *http.Client, apiURL, token string) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	expiry, err := tokenIssuer.Inspect(token)
	if err != nil {
		return nil, fmt.Errorf("inspecting pinning token: %w", err)
	}
	if expiry.HasExpiry {
		logger.Infow("pinning token loaded", "expires_at", expiry.ExpiresAt.Format(time.RFC3339))
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		logs:   logger,
		http:   httpClient,
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
	}, nil
}

// OriginalFilename returns the name the content was pinned under, or an
// empty string when the service does not know the cid. Concurrent lookups
// for the same cid share one request.
func (c *Client) OriginalFilename(ctx context.Context, cid string) (string, error) {
	v, err, shared := c.group.Do(cid, func() (interface{}, error) {
		return c.lookupName(ctx, cid)
	})
	if err != nil {
		return "", err
	}
	if shared {
		c.logs.Debugw("pin lookup shared", "cid", cid)
	}
	return v.(string), nil
}

func (c *Client) lookupName(ctx context.Context, cid string) (string, error) {
	target := c.apiURL + "/data/pinList?" + url.Values{"hashContains": {cid}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("building pin list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("listing pins for %s: %w", cid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("listing pins for %s: unexpected status %s", cid, resp.Status)
	}

	var list pinListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("decoding pin list: %w", err)
	}

	if len(list.Rows) == 0 {
		return "", nil
	}
	row := list.Rows[0]
	switch {
	case row.Metadata != nil && row.Metadata.Name != "":
		return row.Metadata.Name, nil
	case row.PinataMetadata != nil:
		return row.PinataMetadata.Name, nil
	}
	return "", nil
}

// PinFile uploads content under name and pins it as a CIDv1.
func (c *Client) PinFile(ctx context.Context, name string, content io.Reader) (PinResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "upload.bin"
	}

	body, contentType := multipartBody(name, content)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/pinning/pinFileToIPFS", body)
	if err != nil {
		return PinResult{}, fmt.Errorf("building pin request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return PinResult{}, fmt.Errorf("pinning %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return PinResult{}, fmt.Errorf("pinning %s: unexpected status %s: %s", name, resp.Status, strings.TrimSpace(string(msg)))
	}

	var pinned pinFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return PinResult{}, fmt.Errorf("decoding pin response: %w", err)
	}

	cid := firstNonEmpty(pinned.IpfsHash, pinned.CID, pinned.Hash)
	if cid == "" {
		return PinResult{}, ErrNoCID
	}

	c.logs.Infow("file pinned", "name", name, "cid", cid)
	return PinResult{CID: cid, URI: "ipfs://" + cid, OriginalName: name}, nil
}

// multipartBody streams the form so large files are never held in memory.
func multipartBody(name string, content io.Reader) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeForm(mw, name, content)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}

func writeForm(mw *multipart.Writer, name string, content io.Reader) error {
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return err
	}

	metadata, _ := json.Marshal(pinMetadata{Name: name})
	if err := mw.WriteField("pinataMetadata", string(metadata)); err != nil {
		return err
	}
	return mw.WriteField("pinataOptions", `{"cidVersion":1}`)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
