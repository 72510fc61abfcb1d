package validation

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

type sampleRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"omitempty,regrole"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req sampleRequest
	return c.ShouldBindJSON(&req)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindSample(t, `{"email":"bad","password":"secret99"}`)
	require.Error(t, err)
	details := ToDetails(err)
	require.Contains(t, details, "email")
	require.Equal(t, "must be a valid email", details["email"])
}

func TestPwdAliasEnforcesMinLength(t *testing.T) {
	err := bindSample(t, `{"email":"a@example.com","password":"abc"}`)
	require.Error(t, err)
	details := ToDetails(err)
	require.Contains(t, details, "password")
}

func TestRegroleAliasRejectsAdmin(t *testing.T) {
	err := bindSample(t, `{"email":"a@example.com","password":"secret99","role":"admin"}`)
	require.Error(t, err)
	details := ToDetails(err)
	require.Contains(t, details, "role")

	require.NoError(t, bindSample(t, `{"email":"a@example.com","password":"secret99","role":"manufacturer"}`))
}

func TestToDetailsMalformedJSON(t *testing.T) {
	err := bindSample(t, `{"email": nope}`)
	require.Error(t, err)
	require.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNil(t *testing.T) {
	require.Nil(t, ToDetails(nil))
}
