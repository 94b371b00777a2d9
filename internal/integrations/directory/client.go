package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент университетского справочника студентов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStudent получает запись студента по номеру студенческого билета
func (c *Client) GetStudent(ctx context.Context, studentID string) (*Student, error) {
	reqURL := fmt.Sprintf("%s/internal/students/%s", c.baseURL, url.PathEscape(studentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrStudentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var student Student
	if err := json.NewDecoder(resp.Body).Decode(&student); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &student, nil
}

// VerifyStudent проверяет, что студент существует и активен, с мягкой
// деградацией: при недоступности справочника проверка пропускается,
// чтобы заявки не блокировались из-за внешнего сервиса
func (c *Client) VerifyStudent(ctx context.Context, studentID string) error {
	student, err := c.GetStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			return ErrStudentNotFound
		}
		c.log.Warn("VerifyStudent: directory unavailable for student_id=%s, skipping check: %v", studentID, err)
		return nil
	}

	if !student.Active {
		c.log.Info("VerifyStudent: student_id=%s is inactive", studentID)
		return ErrStudentNotFound
	}

	return nil
}
