package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 运行前提:API服务已在BaseURL启动(可用KOHYLI_TEST_BASE_URL覆盖);
// 服务不可达时测试整体跳过而非失败

const (
	// DefaultBaseURL API基础URL
	DefaultBaseURL = "http://localhost:8080"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// BaseURL 返回被测服务地址
func BaseURL() string {
	if v := os.Getenv("KOHYLI_TEST_BASE_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return DefaultBaseURL
}

// RequireServer 服务不可达时跳过当前测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(BaseURL() + "/ping")
	if err != nil {
		t.Skipf("API server not reachable at %s: %v", BaseURL(), err)
	}
	resp.Body.Close()
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Do 发送请求并解析统一响应,返回响应体与HTTP状态码
func Do(t *testing.T, method, path string, body interface{}, token string) (*Response, int) {
	t.Helper()

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		jsonData, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	req, err := http.NewRequest(method, BaseURL()+path, reader)
	require.NoError(t, err, "failed to build request")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "request failed")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "failed to decode response: %s", string(raw))

	return &result, resp.StatusCode
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, path string, token string) (*Response, int) {
	t.Helper()
	return Do(t, http.MethodGet, path, nil, token)
}

// PostJSON 发送JSON POST请求
func PostJSON(t *testing.T, path string, body interface{}, token string) (*Response, int) {
	t.Helper()
	return Do(t, http.MethodPost, path, body, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳确保重复运行时不冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// UserData 用户响应数据
type UserData struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken string `json:"access_token"`
	Type        string `json:"type"`
}

// BookData 图书响应数据
type BookData struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	ISBN       string `json:"isbn"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	TotalCents int64  `json:"total_cents"`
	Total      string `json:"total"`
	Status     string `json:"status"`
	Items      []struct {
		BookID               uint  `json:"book_id"`
		Quantity             int   `json:"quantity"`
		PriceAtPurchaseCents int64 `json:"price_at_purchase_cents"`
	} `json:"items"`
}

// SignupTestUser 注册测试用户并登录,返回用户信息与Token
func SignupTestUser(t *testing.T, prefix string) (UserData, string) {
	t.Helper()

	email := GenerateTestEmail(prefix)
	signupResp, status := PostJSON(t, "/users/signup", map[string]string{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   "secret123",
	}, "")
	require.Equal(t, http.StatusOK, status, "signup failed: %s", signupResp.Message)

	var u UserData
	require.NoError(t, json.Unmarshal(signupResp.Data, &u))

	loginResp, status := Do(t, http.MethodPost, "/users/login", url.Values{
		"username": {email},
		"password": {"secret123"},
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %s", loginResp.Message)

	var login LoginData
	require.NoError(t, json.Unmarshal(loginResp.Data, &login))
	require.NotEmpty(t, login.AccessToken)

	return u, login.AccessToken
}

// FindBookWithStock 从目录里找一本库存足够的图书,找不到则跳过测试
func FindBookWithStock(t *testing.T, minStock int) BookData {
	t.Helper()

	resp, status := GetJSON(t, "/books", "")
	require.Equal(t, http.StatusOK, status)

	var books []BookData
	require.NoError(t, json.Unmarshal(resp.Data, &books))

	for _, b := range books {
		if b.Stock >= minStock {
			return b
		}
	}
	t.Skipf("no seeded book with stock >= %d", minStock)
	return BookData{}
}
