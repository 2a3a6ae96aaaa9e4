package integration

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserLifecycle 注册→登录→鉴权访问→登出→注销的完整链路
func TestUserLifecycle(t *testing.T) {
	RequireServer(t)

	email := GenerateTestEmail("lifecycle")

	t.Run("注册成功且不回显密码", func(t *testing.T) {
		resp, status := PostJSON(t, "/users/signup", map[string]string{
			"first_name": "Jane",
			"last_name":  "Doe",
			"email":      email,
			"password":   "secret123",
		}, "")
		require.Equal(t, http.StatusOK, status, "signup failed: %s", resp.Message)

		var u UserData
		require.NoError(t, json.Unmarshal(resp.Data, &u))
		assert.NotZero(t, u.ID)
		assert.Equal(t, email, u.Email)
		assert.NotContains(t, string(resp.Data), "password")
	})

	t.Run("重复邮箱注册返回409", func(t *testing.T) {
		resp, status := PostJSON(t, "/users/signup", map[string]string{
			"first_name": "Jane",
			"last_name":  "Doe",
			"email":      email,
			"password":   "another99",
		}, "")
		assert.Equal(t, http.StatusConflict, status)
		assert.NotEqual(t, 0, resp.Code)
	})

	var token string

	t.Run("登录返回访问令牌", func(t *testing.T) {
		resp, status := Do(t, http.MethodPost, "/users/login", url.Values{
			"username": {email},
			"password": {"secret123"},
		}, "")
		require.Equal(t, http.StatusOK, status, "login failed: %s", resp.Message)

		var login LoginData
		require.NoError(t, json.Unmarshal(resp.Data, &login))
		assert.Equal(t, "jwt", login.Type)
		require.NotEmpty(t, login.AccessToken)
		token = login.AccessToken
	})

	t.Run("错误密码与未知邮箱同样返回401", func(t *testing.T) {
		_, statusWrongPw := Do(t, http.MethodPost, "/users/login", url.Values{
			"username": {email},
			"password": {"wrongpass1"},
		}, "")
		_, statusUnknown := Do(t, http.MethodPost, "/users/login", url.Values{
			"username": {GenerateTestEmail("ghost")},
			"password": {"secret123"},
		}, "")
		assert.Equal(t, http.StatusUnauthorized, statusWrongPw)
		assert.Equal(t, http.StatusUnauthorized, statusUnknown)
	})

	t.Run("令牌可访问我的订单", func(t *testing.T) {
		resp, status := GetJSON(t, "/users/orders", token)
		require.Equal(t, http.StatusOK, status, "my orders failed: %s", resp.Message)
	})

	t.Run("无令牌访问我的订单返回401", func(t *testing.T) {
		_, status := GetJSON(t, "/users/orders", "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("登出后令牌失效", func(t *testing.T) {
		resp, status := PostJSON(t, "/users/logout", nil, token)
		require.Equal(t, http.StatusOK, status, "logout failed: %s", resp.Message)

		_, status = GetJSON(t, "/users/orders", token)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

// TestDeleteAccount 注销账户后再次注销返回404
func TestDeleteAccount(t *testing.T) {
	RequireServer(t)

	_, token := SignupTestUser(t, "deleteme")

	resp, status := Do(t, http.MethodDelete, "/users/delete", nil, token)
	require.Equal(t, http.StatusOK, status, "delete failed: %s", resp.Message)
	assert.Equal(t, "true", string(resp.Data))

	// 令牌仍然有效但用户已不存在
	_, status = Do(t, http.MethodDelete, "/users/delete", nil, token)
	assert.Equal(t, http.StatusNotFound, status)
}

// TestInvalidToken 非法令牌被拒绝
func TestInvalidToken(t *testing.T) {
	RequireServer(t)

	_, status := GetJSON(t, "/users/orders", "not-a-valid-token")
	assert.Equal(t, http.StatusUnauthorized, status)
}
