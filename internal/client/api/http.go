package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"holocron/internal/client/models"
	"holocron/internal/logging"
)

const defaultTimeout = 15 * time.Second

// HTTPClient is the concrete Client over the JSON/HTTP API.
//
// Every request funnels through do, which attaches the bearer credential,
// classifies the response, and maps failures to the error taxonomy. On a 401
// the credential is discarded through the CredentialSource and the registered
// auth-rejected callback is fired so the session layer can observe the
// invalidation; the in-flight operation fails with ErrAuthenticationRequired
// and is never retried.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	creds          CredentialSource
	onAuthRejected func()
	log            logging.Logger
}

func NewHTTPClient(baseURL string, creds CredentialSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		creds:   creds,
		log:     log,
	}
}

// OnAuthRejected registers a callback invoked whenever the server rejects the
// credential. At most one callback is supported; registering replaces the
// previous one.
func (c *HTTPClient) OnAuthRejected(fn func()) {
	c.onAuthRejected = fn
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type checkoutRequest struct {
	LookupKey string `json:"lookup_key"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	req := registerRequest{Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil, "registration failed")
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := loginRequest{Email: email, Password: password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, "login failed"); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, "failed to get user info"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListNotes(ctx context.Context, search string) ([]models.Note, error) {
	path := "/notes"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, path, nil, &notes, "failed to fetch notes"); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	req := noteRequest{Title: title, Content: content}
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/notes", req, &note, "failed to create note"); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id, title, content string) (*models.Note, error) {
	req := noteRequest{Title: title, Content: content}
	var note models.Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), req, &note, "failed to update note"); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil, "failed to delete note")
}

func (c *HTTPClient) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, &note, "failed to fetch note"); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, lookupKey string) (string, error) {
	req := checkoutRequest{LookupKey: lookupKey}
	var resp checkoutResponse
	if err := c.do(ctx, http.MethodPost, "/billing/create-checkout-session", req, &resp, "failed to start checkout session"); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// errorBody is the error shape of non-2xx responses. The server reports the
// reason under "error"; "detail" is accepted for compatibility with other
// backends implementing the same contract.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (b errorBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Detail
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.creds.Token(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to read credential", "error", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.rejectCredential(ctx)
		return ErrAuthenticationRequired
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.message() != "" {
			msg = eb.message()
		}
		return &RemoteError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// rejectCredential handles a 401: the credential is gone as far as the server
// is concerned, so the persisted copy is discarded and the session layer is
// notified before the operation fails.
func (c *HTTPClient) rejectCredential(ctx context.Context) {
	if err := c.creds.Discard(ctx); err != nil {
		c.log.Error(ctx, "failed to discard rejected credential", "error", err)
	}
	if c.onAuthRejected != nil {
		c.onAuthRejected()
	}
}
