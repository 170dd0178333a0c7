// Package client is the Go SDK for the FailFund API. It wraps every REST
// endpoint, attaches the bearer token held by the Session, and maps error
// statuses onto APIError. Calls are fire-and-forget: no retries, no backoff.
package client

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"failfund/dto"
	"failfund/models"

	json "github.com/goccy/go-json"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) IsNotFound() bool     { return e.StatusCode == http.StatusNotFound }
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }
func (e *APIError) IsForbidden() bool    { return e.StatusCode == http.StatusForbidden }

// envelope mirrors the server response shape.
type envelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *Session
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		Session:    session,
	}
}

func (cl *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, cl.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cl.Session != nil {
		if token := cl.Session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return err
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Mess}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// Register creates an account and stores the returned credentials in the
// session.
func (cl *Client) Register(name, email, password, role string) (dto.AuthResponse, error) {
	var auth dto.AuthResponse
	err := cl.do(http.MethodPost, "/auth/register", dto.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}, &auth)
	if err != nil {
		return auth, err
	}
	if cl.Session != nil {
		if err := cl.Session.SetCredentials(auth.User, auth.AccessToken); err != nil {
			return auth, err
		}
	}
	return auth, nil
}

func (cl *Client) Login(email, password string) (dto.AuthResponse, error) {
	var auth dto.AuthResponse
	err := cl.do(http.MethodPost, "/auth/login", dto.LoginInput{
		Email:    email,
		Password: password,
	}, &auth)
	if err != nil {
		return auth, err
	}
	if cl.Session != nil {
		if err := cl.Session.SetCredentials(auth.User, auth.AccessToken); err != nil {
			return auth, err
		}
	}
	return auth, nil
}

func (cl *Client) Logout() error {
	if cl.Session == nil {
		return nil
	}
	return cl.Session.Clear()
}

func (cl *Client) ListStartups(filters dto.StartupFilters) ([]models.Startup, error) {
	params := url.Values{}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Status != "" {
		params.Set("status", filters.Status)
	}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}

	path := "/startups"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var startups []models.Startup
	err := cl.do(http.MethodGet, path, nil, &startups)
	return startups, err
}

func (cl *Client) MyStartups() ([]models.Startup, error) {
	var startups []models.Startup
	err := cl.do(http.MethodGet, "/startups/my", nil, &startups)
	return startups, err
}

func (cl *Client) GetStartup(id uint) (models.Startup, error) {
	var startup models.Startup
	err := cl.do(http.MethodGet, "/startups/"+strconv.FormatUint(uint64(id), 10), nil, &startup)
	return startup, err
}

func (cl *Client) CreateStartup(input dto.CreateStartupInput) (models.Startup, error) {
	var startup models.Startup
	err := cl.do(http.MethodPost, "/startups", input, &startup)
	return startup, err
}

func (cl *Client) UpdateStartup(id uint, input dto.UpdateStartupInput) (models.Startup, error) {
	var startup models.Startup
	err := cl.do(http.MethodPut, "/startups/"+strconv.FormatUint(uint64(id), 10), input, &startup)
	return startup, err
}

func (cl *Client) DeleteStartup(id uint) error {
	return cl.do(http.MethodDelete, "/startups/"+strconv.FormatUint(uint64(id), 10), nil, nil)
}

func (cl *Client) ListDiscussions(category string) ([]models.Discussion, error) {
	path := "/discussions"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var discussions []models.Discussion
	err := cl.do(http.MethodGet, path, nil, &discussions)
	return discussions, err
}

func (cl *Client) GetDiscussion(id uint) (models.Discussion, error) {
	var discussion models.Discussion
	err := cl.do(http.MethodGet, "/discussions/"+strconv.FormatUint(uint64(id), 10), nil, &discussion)
	return discussion, err
}

func (cl *Client) CreateDiscussion(input dto.CreateDiscussionInput) (models.Discussion, error) {
	var discussion models.Discussion
	err := cl.do(http.MethodPost, "/discussions", input, &discussion)
	return discussion, err
}

func (cl *Client) AddReply(id uint, content string) (models.Discussion, error) {
	var discussion models.Discussion
	err := cl.do(http.MethodPost, "/discussions/"+strconv.FormatUint(uint64(id), 10)+"/replies",
		dto.ReplyInput{Content: content}, &discussion)
	return discussion, err
}

func (cl *Client) Notifications() ([]models.Notification, error) {
	var notifications []models.Notification
	err := cl.do(http.MethodGet, "/notifications", nil, &notifications)
	return notifications, err
}

func (cl *Client) MarkNotificationRead(id uint) (models.Notification, error) {
	var notification models.Notification
	err := cl.do(http.MethodPut, "/notifications/"+strconv.FormatUint(uint64(id), 10)+"/read", nil, &notification)
	return notification, err
}

func (cl *Client) Health() error {
	req, err := http.NewRequest(http.MethodGet, cl.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return nil
}
