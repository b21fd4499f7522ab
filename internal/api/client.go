package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tgienger/lifeos/internal/models"
)

const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultTimeout = 15 * time.Second
)

// TaskService is the set of task operations the backend offers
type TaskService interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	CreateTask(ctx context.Context, in TaskInput) (models.Task, error)
	UpdateTask(ctx context.Context, id string, in TaskInput) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (models.Task, error)
}

// Client talks to the task REST API. Every method issues exactly one request.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ TaskService = (*Client)(nil)

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTasks fetches every task
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return ToModels(tasks), nil
}

// GetTask fetches a single task
func (c *Client) GetTask(ctx context.Context, id string) (models.Task, error) {
	if err := checkID(id); err != nil {
		return models.Task{}, err
	}
	var t Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil, &t); err != nil {
		return models.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return ToModel(t), nil
}

// CreateTask creates a task and returns it as stored by the backend
func (c *Client) CreateTask(ctx context.Context, in TaskInput) (models.Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPost, "/tasks", in, &t); err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return ToModel(t), nil
}

// UpdateTask applies the fields set in in to the task
func (c *Client) UpdateTask(ctx context.Context, id string, in TaskInput) (models.Task, error) {
	if err := checkID(id); err != nil {
		return models.Task{}, err
	}
	var t Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, in, &t); err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return ToModel(t), nil
}

// DeleteTask deletes a task
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ToggleTask flips the completed flag of a task
func (c *Client) ToggleTask(ctx context.Context, id string) (models.Task, error) {
	if err := checkID(id); err != nil {
		return models.Task{}, err
	}
	var t Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id+"/toggle", nil, &t); err != nil {
		return models.Task{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return ToModel(t), nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// do sends a JSON request and decodes the response into out when out is
// non-nil. Non-2xx responses are returned as *Error.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
