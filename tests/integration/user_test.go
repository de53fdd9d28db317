package integration

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhaul/loadboard/response"
)

func loginUser(t *testing.T, username, password string) string {
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)

	resp := doRequest(t, "POST", "/login", "", form, http.StatusOK)

	var result response.TokenResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	return result.Token
}

func TestLogin(t *testing.T) {
	form := url.Values{}
	form.Add("username", "acme-shipping")
	form.Add("password", "123456")

	resp := doRequest(t, "POST", "/login", "", form, http.StatusOK)

	var result response.TokenResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, "acme-shipping", result.Username)
	require.Equal(t, "shipper", result.Role)
	require.NotEmpty(t, result.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	form := url.Values{}
	form.Add("username", "acme-shipping")
	form.Add("password", "wrong")

	doRequest(t, "POST", "/login", "", form, http.StatusUnauthorized)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	reqBody := map[string]string{"username": "acme-shipping", "password": "123456"}
	doRequest(t, "POST", "/register", "", reqBody, http.StatusConflict)
}

func TestGetMe(t *testing.T) {
	token := loginUser(t, "roadrunner", "123456")
	resp := doRequest(t, "GET", "/me", token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "roadrunner")
	require.NotContains(t, resp.Body.String(), "123456")
}

func TestGetUsers(t *testing.T) {
	token := loginUser(t, "acme-shipping", "123456")
	resp := doRequest(t, "GET", "/users", token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "acme-shipping")
	require.Contains(t, resp.Body.String(), "roadrunner")
}

func TestGetUsersUnauthenticated(t *testing.T) {
	doRequest(t, "GET", "/users", "", nil, http.StatusUnauthorized)
}
